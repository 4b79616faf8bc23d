package logging

import (
	"strings"

	"github.com/pterm/pterm"

	"sqlrecsys/server/internal/errors"
)

// FormatProviderError formats a model provider failure for terminal display.
// Used by the CLI commands; the gRPC path reports failure classes instead.
func FormatProviderError(err error) string {
	if err == nil {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Model call failed"))
	builder.WriteString("\n\n")

	switch errors.KindOf(err) {
	case errors.ProviderAuth:
		builder.WriteString("The provider rejected the configured credentials.\n")
		builder.WriteString("Check the API key for the selected MODEL_TYPE:\n")
		builder.WriteString("  • giga   → API_KEY\n")
		builder.WriteString("  • openai → OPENAI_API_KEY\n")
		builder.WriteString("  • gemini → GOOGLE_API_KEY\n")

	case errors.ProviderRateLimited:
		builder.WriteString("The provider throttled the request.\n")
		builder.WriteString("Wait a moment and retry, or lower the request rate.\n")

	case errors.ProviderTimeout:
		builder.WriteString("The model call exceeded its deadline.\n")
		builder.WriteString("Raise REVIEW_TIMEOUT or try a smaller request.\n")

	case errors.ProviderUnavailable:
		builder.WriteString("The provider endpoint is unreachable.\n")
		builder.WriteString("This usually happens when:\n")
		builder.WriteString("  • The network path to the provider is interrupted\n")
		builder.WriteString("  • The provider is having an outage\n")
		builder.WriteString("  • A proxy or firewall blocks the connection\n")

	case errors.MalformedResponse:
		builder.WriteString("The model answered, but not in the expected shape.\n")
		builder.WriteString("Retrying usually helps; persistent failures suggest\n")
		builder.WriteString("the configured model cannot follow the output format.\n")

	default:
		builder.WriteString("The review could not be completed.\n")
	}

	builder.WriteString("\n")
	builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(err.Error())))
	return builder.String()
}
