// Command tooncat is a small CLI around the toon package: it pretty-prints
// TOON documents with syntax highlighting, converts between TOON and JSON,
// and reports how many fewer tokens a TOON rendering costs than the JSON
// it was converted from. It mirrors the role of the teacher's cmd/ycat,
// generalized from "dump one YAML file" to the handful of conveniences a
// TOON-as-LLM-payload workflow wants.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/pkoukk/tiktoken-go"
	"github.com/spf13/cobra"

	"github.com/toon-go/toon"
	"github.com/toon-go/toon/lexer"
	"github.com/toon-go/toon/printer"
)

func format(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}

func tooncatHighlighter() *printer.Highlighter {
	reset := format(color.Reset)
	return &printer.Highlighter{
		Key:        &printer.Property{Prefix: format(color.FgHiCyan), Suffix: reset},
		String:     &printer.Property{Prefix: format(color.FgHiGreen), Suffix: reset},
		Number:     &printer.Property{Prefix: format(color.FgHiMagenta), Suffix: reset},
		Bool:       &printer.Property{Prefix: format(color.FgHiMagenta), Suffix: reset},
		Structural: &printer.Property{Prefix: format(color.FgHiBlack), Suffix: reset},
	}
}

func renderHighlighted(src string) string {
	h := tooncatHighlighter()
	tokens := lexer.Tokenize(src)
	byLine := make(map[int][]lexer.Token)
	for _, t := range tokens {
		byLine[t.Line] = append(byLine[t.Line], t)
	}
	lines := splitLines(src)
	var out []byte
	for i, line := range lines {
		lineNo := i + 1
		toks := byLine[lineNo]
		out = append(out, []byte(fmt.Sprintf("%s%2d | %s", format(color.Bold), lineNo, format(color.Reset)))...)
		out = append(out, []byte(paintLine(line, toks, h))...)
		out = append(out, '\n')
	}
	return string(out)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// paintLine re-renders one source line, wrapping each classified token
// span in its highlighter color and leaving gaps (indentation, spacing
// between tokens) untouched.
func paintLine(line string, toks []lexer.Token, h *printer.Highlighter) string {
	if len(toks) == 0 {
		return line
	}
	var out []byte
	cursor := 0
	for _, t := range toks {
		start := t.Column - 1
		if start < cursor || start > len(line) {
			continue
		}
		out = append(out, line[cursor:start]...)
		end := start + len(t.Value)
		if end > len(line) {
			end = len(line)
		}
		out = append(out, h.Paint(t.Class, line[start:end])...)
		cursor = end
	}
	if cursor < len(line) {
		out = append(out, line[cursor:]...)
	}
	return string(out)
}

func readInput(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat [file]",
		Short: "print a TOON document with syntax highlighting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(path)
			if err != nil {
				return err
			}
			writer := colorable.NewColorableStdout()
			_, err = writer.Write([]byte(renderHighlighted(string(data))))
			return err
		},
	}
}

func newEncodeCmd() *cobra.Command {
	var keyFolding bool
	cmd := &cobra.Command{
		Use:   "encode [file.json]",
		Short: "convert a JSON document to TOON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(path)
			if err != nil {
				return err
			}
			var v interface{}
			if err := json.Unmarshal(data, &v); err != nil {
				return fmt.Errorf("tooncat: invalid JSON: %w", err)
			}
			var opts []toon.EncodeOption
			if keyFolding {
				opts = append(opts, toon.WithKeyFolding(toon.KeyFoldingSafe))
			}
			out, err := toon.Marshal(v, opts...)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	cmd.Flags().BoolVar(&keyFolding, "fold-keys", false, "collapse single-key object chains into dotted paths")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file.toon]",
		Short: "convert a TOON document to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(path)
			if err != nil {
				return err
			}
			var v interface{}
			if err := toon.Unmarshal(data, &v); err != nil {
				return err
			}
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Println(string(out))
			return err
		},
	}
}

func newTokensCmd() *cobra.Command {
	var encoding string
	cmd := &cobra.Command{
		Use:   "tokens [file.json]",
		Short: "compare GPT tokenizer token counts between JSON and TOON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(path)
			if err != nil {
				return err
			}
			var v interface{}
			if err := json.Unmarshal(data, &v); err != nil {
				return fmt.Errorf("tooncat: invalid JSON: %w", err)
			}
			toonBytes, err := toon.Marshal(v)
			if err != nil {
				return err
			}
			tke, err := tiktoken.GetEncoding(encoding)
			if err != nil {
				return err
			}
			jsonTokens := len(tke.Encode(string(data), nil, nil))
			toonTokens := len(tke.Encode(string(toonBytes), nil, nil))
			savedPct := 0.0
			if jsonTokens > 0 {
				savedPct = 100 * float64(jsonTokens-toonTokens) / float64(jsonTokens)
			}
			fmt.Printf("json: %d tokens\ntoon: %d tokens\nsaved: %.1f%%\n", jsonTokens, toonTokens, savedPct)
			return nil
		},
	}
	cmd.Flags().StringVar(&encoding, "encoding", "cl100k_base", "tiktoken encoding name")
	return cmd
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tooncat",
		Short: "inspect and convert TOON documents",
	}
	root.AddCommand(newCatCmd(), newEncodeCmd(), newDecodeCmd(), newTokensCmd(), newConvertDirCmd())
	return root
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, toon.FormatError(err, true, true))
		os.Exit(1)
	}
}
