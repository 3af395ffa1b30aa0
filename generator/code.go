package generator

import (
	"fmt"

	"github.com/swagcodegen/swagcodegen/cgerrors"
	"github.com/swagcodegen/swagcodegen/view"
)

// GetCode renders dialect code and returns only the source text.
func GetCode(dialect string, opts ...Option) (string, error) {
	res, err := GenerateWithOptions(dialect, opts...)
	if err != nil {
		return "", err
	}
	return res.Code, nil
}

// GetTypeScriptCode renders TypeScript. It fails with
// cgerrors.ErrUnsupportedSpecVersion before rendering anything when the
// document is not swagger 2.0.
func GetTypeScriptCode(opts ...Option) (string, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return "", fmt.Errorf("generator: invalid options: %w", err)
	}

	parsed, err := cfg.parse()
	if err != nil {
		return "", err
	}

	if v := parsed.Document.Swagger; v != view.SupportedVersion {
		return "", fmt.Errorf("generator: typescript: %w",
			&cgerrors.VersionError{Found: v, Supported: view.SupportedVersion})
	}

	res, err := cfg.gen.GenerateParsed(DialectTypeScript, *parsed)
	if err != nil {
		return "", err
	}
	return res.Code, nil
}

// GetJavaScriptCode renders JavaScript.
func GetJavaScriptCode(opts ...Option) (string, error) {
	return GetCode(DialectJavaScript, opts...)
}

// GetFlowCode renders Flow-annotated JavaScript.
func GetFlowCode(opts ...Option) (string, error) {
	return GetCode(DialectFlow, opts...)
}

// GetGoCode renders a Go client package.
func GetGoCode(opts ...Option) (string, error) {
	return GetCode(DialectGo, opts...)
}
