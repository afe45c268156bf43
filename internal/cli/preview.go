package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/swatch/internal/colormap"
	"github.com/opencode-ai/swatch/internal/models"
	"github.com/opencode-ai/swatch/internal/presets"
	"github.com/opencode-ai/swatch/internal/tui/components"
)

var (
	previewVariant  string
	previewDisabled bool
	previewLabel    string
	previewIcon     string
)

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewVariant, "variant", "all", "button variant (text, fill, outline, all)")
	previewCmd.Flags().BoolVar(&previewDisabled, "disabled", false, "render the disabled state")
	previewCmd.Flags().StringVar(&previewLabel, "label", "Button", "button label")
	previewCmd.Flags().StringVar(&previewIcon, "icon", "add", "button icon (add, send, check, close, delete, star)")
}

var previewCmd = &cobra.Command{
	Use:   "preview [preset]",
	Short: "Render themed buttons for a color set",
	Long: `Render the text, fill and outline buttons themed by a preset.

Without a preset the configured default set is used.`,
	Example: `  swatch preview
  swatch preview material-dark --variant outline --disabled`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, set, err := resolveSet(args)
		if err != nil {
			return err
		}

		variants := colormap.Variants
		if previewVariant != "all" {
			variant, err := colormap.ParseVariant(previewVariant)
			if err != nil {
				return &PreflightError{
					Message:  err.Error(),
					Hint:     "Use one of text, fill, outline or all",
					NextStep: "swatch preview --variant fill",
				}
			}
			variants = []colormap.Variant{variant}
		}

		state := colormap.Default
		if previewDisabled {
			state = colormap.Disabled
		}

		props := components.ButtonProps{
			TextLabel: previewLabel,
			Icon:      previewIcon,
			Disabled:  previewDisabled,
		}

		previews := make([]buttonPreview, 0, len(variants))
		for _, variant := range variants {
			previews = append(previews, newButtonPreview(name, variant, state, set))
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, previews)
		}
		for _, p := range previews {
			cm := colormap.New(p.Variant, state, set)
			fmt.Fprintf(out, "%s (%s)\n", p.Variant, p.State)
			fmt.Fprintln(out, components.RenderButton(p.Variant, cm, props))
		}
		return nil
	},
}

type buttonPreview struct {
	Set       string           `json:"set"`
	Variant   colormap.Variant `json:"variant"`
	State     string           `json:"state"`
	Ink       models.Color     `json:"ink"`
	Icon      models.Color     `json:"icon"`
	Container models.Color     `json:"container,omitempty"`
	Outline   models.Color     `json:"outline,omitempty"`
}

func newButtonPreview(name string, variant colormap.Variant, state colormap.State, set models.ColorSet) buttonPreview {
	cm := colormap.New(variant, state, set)
	p := buttonPreview{
		Set:     name,
		Variant: variant,
		State:   state.String(),
		Ink:     cm.Ink(),
		Icon:    cm.Icon(),
	}
	if fill, ok := cm.(colormap.Fill); ok {
		p.Container = fill.Container()
	}
	if outline, ok := cm.(colormap.Outline); ok {
		p.Outline = outline.Outline()
	}
	return p
}

// resolveSet returns the preset named by args[0], or the configured default
// set when args is empty.
func resolveSet(args []string) (string, models.ColorSet, error) {
	if len(args) == 0 {
		set := models.DefaultColorSet
		if cfg := GetConfig(); cfg != nil {
			set = cfg.DefaultSet
		}
		return "default", set, nil
	}

	available, err := loadPresets()
	if err != nil {
		return "", models.ColorSet{}, err
	}
	preset, err := presets.Find(available, args[0])
	if err != nil {
		return "", models.ColorSet{}, &PreflightError{
			Message:  err.Error(),
			Hint:     "List the available presets",
			NextStep: "swatch sets",
		}
	}
	return preset.Name, preset.Colors, nil
}
