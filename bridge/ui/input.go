package ui

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ratel-online/whist/consts"
)

var input = bufio.NewReader(os.Stdin)

func SetInput(reader io.Reader) {
	input = bufio.NewReader(reader)
}

// readLine panics with consts.ErrorsInputClosed once input runs dry; the player has left.
func readLine() string {
	line, err := input.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		panic(consts.ErrorsInputClosed)
	}
	return strings.TrimSpace(line)
}
