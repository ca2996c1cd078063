package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme resets colors to the default preset, layers the named preset and
// then individual overrides on top, and rebuilds every derived style.
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

// colorTargets maps each token to the variables it drives.
func colorTargets() map[ColorToken][]*lipgloss.AdaptiveColor {
	return map[ColorToken][]*lipgloss.AdaptiveColor{
		TokenTextPrimary:          {&TextPrimaryColor},
		TokenTextSecondary:        {&TextSecondaryColor},
		TokenTextMuted:            {&TextMutedColor},
		TokenTextPlaceholder:      {&TextPlaceholderColor},
		TokenTextLink:             {&TextLinkColor},
		TokenBorderDefault:        {&BorderDefaultColor},
		TokenBorderFocus:          {&FormTextInputFocusedBorderColor},
		TokenStatusSuccess:        {&StatusSuccessColor},
		TokenStatusWarning:        {&StatusWarningColor},
		TokenStatusError:          {&StatusErrorColor},
		TokenButtonText:           {&ButtonTextColor},
		TokenButtonPrimaryBg:      {&ButtonPrimaryBgColor},
		TokenButtonPrimaryFocusBg: {&ButtonPrimaryFocusBgColor},
		TokenButtonDisabledBg:     {&ButtonDisabledBgColor},
		TokenButtonDisabledText:   {&ButtonDisabledTextColor},
		TokenFormBorder:           {&FormTextInputBorderColor},
		TokenFormBorderFocus:      {&FormTextInputFocusedBorderColor},
		TokenOverlayTitle:         {&OverlayTitleColor},
		TokenOverlayBorder:        {&OverlayBorderColor},
		TokenToastSuccess:         {&ToastBorderSuccessColor},
		TokenToastError:           {&ToastBorderErrorColor},
		TokenToastInfo:            {&ToastBorderInfoColor},
		TokenToastWarn:            {&ToastBorderWarnColor},
		TokenSpinner:              {&SpinnerColor},
	}
}

func applyColors(colors map[ColorToken]string) {
	targets := colorTargets()
	// Apply in token order so form.border.focus wins over border.focus.
	for _, token := range AllTokens() {
		c, ok := colors[token]
		if !ok {
			continue
		}
		for _, v := range targets[token] {
			*v = lipgloss.AdaptiveColor{Light: c, Dark: c}
		}
	}
}

// rebuildStyles recreates Style values, which capture colors at creation time.
func rebuildStyles() {
	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	DisabledButtonStyle = baseButtonStyle.
		Foreground(ButtonDisabledTextColor).
		Background(ButtonDisabledBgColor)

	HelperTextStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	LinkStyle = lipgloss.NewStyle().Foreground(TextLinkColor).Underline(true)
	LinkFocusedStyle = lipgloss.NewStyle().Foreground(TextLinkColor).Underline(true).Bold(true).Reverse(true)
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
