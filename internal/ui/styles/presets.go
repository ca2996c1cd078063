package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"paper":         PaperPreset,
	"high-contrast": HighContrastPreset,
}

// DefaultPreset matches the Dark values in styles.go.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default signup theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",
		TokenTextLink:        "#54A0FF",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#FFFFFF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenButtonText:           "#FFFFFF",
		TokenButtonPrimaryBg:      "#1A5276",
		TokenButtonPrimaryFocusBg: "#3498DB",
		TokenButtonDisabledBg:     "#2D2D2D",
		TokenButtonDisabledText:   "#777777",

		TokenFormBorder:      "#8C8C8C",
		TokenFormBorderFocus: "#FFFFFF",

		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",

		TokenSpinner: "#FFFFFF",
	},
}

// PaperPreset is a light palette for terminals with a white background.
var PaperPreset = Preset{
	Name:        "paper",
	Description: "Dark ink on a light background",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#1F2328",
		TokenTextSecondary:   "#424A53",
		TokenTextMuted:       "#6E7781",
		TokenTextPlaceholder: "#8C959F",
		TokenTextLink:        "#0969DA",

		TokenBorderDefault: "#AFB8C1",
		TokenBorderFocus:   "#0969DA",

		TokenStatusSuccess: "#1A7F37",
		TokenStatusWarning: "#9A6700",
		TokenStatusError:   "#CF222E",

		TokenButtonText:           "#FFFFFF",
		TokenButtonPrimaryBg:      "#1F883D",
		TokenButtonPrimaryFocusBg: "#0969DA",
		TokenButtonDisabledBg:     "#EAEEF2",
		TokenButtonDisabledText:   "#8C959F",

		TokenFormBorder:      "#AFB8C1",
		TokenFormBorderFocus: "#0969DA",

		TokenOverlayTitle:  "#1F2328",
		TokenOverlayBorder: "#6E7781",

		TokenToastSuccess: "#1A7F37",
		TokenToastError:   "#CF222E",
		TokenToastInfo:    "#0969DA",
		TokenToastWarn:    "#9A6700",

		TokenSpinner: "#8250DF",
	},
}

// HighContrastPreset maximizes legibility on dark terminals.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#C0C0C0",
		TokenTextPlaceholder: "#C0C0C0",
		TokenTextLink:        "#00FFFF",

		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenButtonText:           "#000000",
		TokenButtonPrimaryBg:      "#00FFFF",
		TokenButtonPrimaryFocusBg: "#FFFF00",
		TokenButtonDisabledBg:     "#404040",
		TokenButtonDisabledText:   "#C0C0C0",

		TokenFormBorder:      "#FFFFFF",
		TokenFormBorderFocus: "#FFFF00",

		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
		TokenToastWarn:    "#FFFF00",

		TokenSpinner: "#FFFFFF",
	},
}
