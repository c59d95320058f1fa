package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

func newRootCmd() *cobra.Command {
	var output string

	root := &cobra.Command{
		Use:   "nutricalc",
		Short: "Offline nutrition calculations",
		Long: `nutricalc runs the fittrack nutrition formulas without a server or a database.

EXAMPLES:

  nutricalc metrics --sex M --height 180 --dob 1990-06-15 --weight 82.5
  nutricalc target --weight 80 --protein 2 --carbs 3 --fat 1 -o yaml
  nutricalc normalize 150 g`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if output != outputText && output != outputYAML {
				return fmt.Errorf("unknown output format: %s (use text or yaml)", output)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&output, "output", "o", outputText, "output format [text | yaml]")

	printer := func(cmd *cobra.Command) *resultPrinter {
		return &resultPrinter{out: cmd.OutOrStdout(), format: output}
	}

	root.AddCommand(
		newMetricsCmd(printer),
		newTargetCmd(printer),
		newNormalizeCmd(printer),
	)
	return root
}

// field is one labeled value of a result; the order of fields is kept in both formats.
type field struct {
	Label string
	Key   string
	Value string
}

type resultPrinter struct {
	out    io.Writer
	format string
}

func (p *resultPrinter) print(title string, fields []field) error {
	if p.format == outputYAML {
		doc := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range fields {
			doc.Content = append(doc.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: f.Key},
				&yaml.Node{Kind: yaml.ScalarNode, Value: f.Value},
			)
		}
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	if _, err := bold.Fprintln(p.out, title); err != nil {
		return err
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(p.out, "  %s %s\n", faint.Sprintf("%-16s", f.Label), f.Value); err != nil {
			return err
		}
	}
	return nil
}
