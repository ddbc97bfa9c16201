package encode

import (
	"fmt"

	"github.com/fatih/color"
)

// Colors selects the sprintf functions used by Listing. NewColors
// gives the terminal palette; NoColors passes text through.
type Colors struct {
	Key    func(format string, a ...any) string
	Value  func(format string, a ...any) string
	Origin func(format string, a ...any) string
	Err    func(format string, a ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Key:    color.RGB(196, 96, 16).SprintfFunc(),
		Value:  color.RGB(128, 216, 236).SprintfFunc(),
		Origin: color.New(color.Faint).SprintfFunc(),
		Err:    color.RedString,
	}
}

func NoColors() *Colors {
	return &Colors{
		Key:    fmt.Sprintf,
		Value:  fmt.Sprintf,
		Origin: fmt.Sprintf,
		Err:    fmt.Sprintf,
	}
}
