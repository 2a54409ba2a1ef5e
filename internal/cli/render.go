package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_cross/internal/render"
)

var (
	renderScramble string
	renderFacelets string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw a cube",
	Long: `Draw the unfolded net of a cube given by a scramble or facelet letters,
together with its detected phase and facelet string.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderScramble, "scramble", "s", "", "Scramble applied to the solved cube")
	renderCmd.Flags().StringVarP(&renderFacelets, "facelets", "f", "", "54 facelet letters, face by face")
}

func runRender(cmd *cobra.Command, args []string) error {
	c, err := loadCube(renderScramble, renderFacelets)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderer().Net(c))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s\n", render.Label("Phase:"), render.Phase(c.DetectPhase()))
	fmt.Fprintf(out, "%s %s\n", render.Label("Facelets:"), c.Facelets())
	return nil
}
