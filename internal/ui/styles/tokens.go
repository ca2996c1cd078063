package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens users can override under theme.colors.
const (
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"
	TokenTextLink        ColorToken = "text.link"

	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	TokenButtonText           ColorToken = "button.text"
	TokenButtonPrimaryBg      ColorToken = "button.primary.bg"
	TokenButtonPrimaryFocusBg ColorToken = "button.primary.focus"
	TokenButtonDisabledBg     ColorToken = "button.disabled.bg"
	TokenButtonDisabledText   ColorToken = "button.disabled.text"

	TokenFormBorder      ColorToken = "form.border"
	TokenFormBorderFocus ColorToken = "form.border.focus" //nolint:gosec // UI color token, not credentials

	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"

	TokenSpinner ColorToken = "spinner"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary, TokenTextSecondary, TokenTextMuted, TokenTextPlaceholder, TokenTextLink,
		TokenBorderDefault, TokenBorderFocus,
		TokenStatusSuccess, TokenStatusWarning, TokenStatusError,
		TokenButtonText, TokenButtonPrimaryBg, TokenButtonPrimaryFocusBg, TokenButtonDisabledBg, TokenButtonDisabledText,
		TokenFormBorder, TokenFormBorderFocus,
		TokenOverlayTitle, TokenOverlayBorder,
		TokenToastSuccess, TokenToastError, TokenToastInfo, TokenToastWarn,
		TokenSpinner,
	}
}
