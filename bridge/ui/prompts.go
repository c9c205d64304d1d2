package ui

import (
	"strconv"
	"strings"

	"github.com/ratel-online/whist/bridge/card"
	"github.com/ratel-online/whist/render"
)

func PromptString(message string) string {
	for {
		Println(message)
		text := readLine()
		if text == "" {
			Println("Invalid text input")
			continue
		}
		return text
	}
}

func promptInteger(message string) int {
	for {
		Println(message)
		number, err := strconv.Atoi(readLine())
		if err != nil {
			Println("Invalid number input")
			continue
		}
		return number
	}
}

func promptUppercaseString(message string) string {
	input := PromptString(message)
	return strings.ToUpper(input)
}

func PromptCardSelection(cards []card.Card) card.Card {
	labels := Labels(len(cards))
	cardOptions := make(map[string]card.Card, len(cards))
	for i, label := range labels {
		cardOptions[label] = cards[i]
	}
	cardSelectionMessage := "Select a card to play:\n" + render.Hand(labels, cards)

	for {
		selectedLabel := promptUppercaseString(cardSelectionMessage)
		selectedCard, found := cardOptions[selectedLabel]
		if !found {
			Printfln("No card assigned to '%s'", selectedLabel)
			continue
		}
		return selectedCard
	}
}

func PromptIntegerInRange(minimum int, maximum int, message string) int {
	for {
		input := promptInteger(message)
		if input < minimum || input > maximum {
			Printfln("Input out of range (minimum: %d, maximum: %d)", minimum, maximum)
			continue
		}
		return input
	}
}
