package driver

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/larynjahor/pushpop/pkg"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", pkg.ErrUnknownFormat, s)
	}
}

// WriteResponse renders resp to w. The text form lists each sequence in drain
// order and prints the sum only if it was validated.
func WriteResponse(w io.Writer, format Format, resp *Response) error {
	switch format {
	case FormatText:
		return writeText(w, resp)
	case FormatJSON:
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return err
		}

		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(resp); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", pkg.ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, resp *Response) error {
	var b strings.Builder

	b.WriteString("stack: ")
	writeValues(&b, resp.Stack)
	b.WriteString("\nqueue: ")
	writeValues(&b, resp.Queue)
	b.WriteByte('\n')

	if resp.Sum != nil {
		b.WriteString("sum: ")
		b.WriteString(strconv.Itoa(*resp.Sum))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func writeValues(b *strings.Builder, vals []int) {
	b.WriteByte('{')

	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(strconv.Itoa(v))
	}

	b.WriteByte('}')
}
