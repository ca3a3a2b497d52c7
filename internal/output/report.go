package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhanam/fincalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// ResolveFormatter returns the formatter for name or an ErrUnsupportedFormat
// error listing what is available.
func ResolveFormatter(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// WriteReport renders the report in the named format to w.
func WriteReport(w io.Writer, report *domain.Report, format string) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveReport renders the report to a timestamped file in dir and returns its path.
func SaveReport(report *domain.Report, format, dir string) (string, error) {
	f, err := ResolveFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, report, dir)
}

// SaveConfiguration writes a request file as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
