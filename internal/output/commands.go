package output

import (
	"fmt"
	"io"

	"github.com/pranshuparmar/musicctl/pkg/model"
)

// RenderCommands lists, player by player, the commands each one accepts.
func RenderCommands(w io.Writer, sets []model.CommandSet, colorEnabled bool) {
	for _, set := range sets {
		player := set.Player
		if colorEnabled {
			player = colorMagentaShort + player + colorResetShort
		}
		fmt.Fprintf(w, "For player %s the following commands are available:\n", player)
		for _, cmd := range set.Commands {
			fmt.Fprintf(w, "   %s\n", cmd)
		}
	}
}
