package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"soulbuddy/internal/adapters/signinfo/csvdata"
	"soulbuddy/internal/domain/zodiac"
	"soulbuddy/internal/platform/logger"
	"soulbuddy/internal/platform/markup"
)

type rootFlags struct {
	dataPath string
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "zodiac",
		Short: "Herramientas offline de SoulBuddy",
		Long: `Clasifica fechas de nacimiento, lista los signos del dataset y
normaliza HTML de respuestas del modelo sin levantar el servidor.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.dataPath, "data", "", "CSV de signos (default: dataset embebido)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "debug|info|warn|error")

	root.AddCommand(
		newSignCmd(flags),
		newSignsCmd(flags),
		newSanitizeCmd(flags),
	)
	return root
}

func (f *rootFlags) logger(cmd *cobra.Command) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(f.logLevel),
		Format: logger.FormatText,
		App:    "zodiac",
		Output: cmd.ErrOrStderr(),
	})
}

func newSignCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sign [DD-MM-YYYY]",
		Short: "Signo zodiacal de una fecha",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := flags.logger(cmd)
			defer func() { _ = log.Sync() }()

			sign, err := zodiac.ClassifySign(args[0])
			if err != nil {
				return err
			}
			log.Debug("classified", map[string]any{"input": args[0], "sign": sign.String()})

			table, err := csvdata.LoadFile(flags.dataPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				entry, _ := table.Entry(string(sign))
				entry.Sign = string(sign)
				entry.Description = table.Description(string(sign))
				return writeJSON(out, entry)
			}
			_, err = fmt.Fprintf(out, "%s\n%s\n", sign, table.Description(string(sign)))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "salida JSON")
	return cmd
}

func newSignsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "signs",
		Short: "Lista los doce signos con su rango de fechas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := csvdata.LoadFile(flags.dataPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rg := range zodiac.Ranges() {
				element := "-"
				if e, ok := table.Entry(string(rg.Sign)); ok && e.Element != "" {
					element = e.Element
				}
				if _, err := fmt.Fprintf(out, "%-12s %-13s %-13s %s\n", rg.Sign, rg.Start, rg.End, element); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newSanitizeCmd(flags *rootFlags) *cobra.Command {
	var (
		policyName string
		toMarkdown bool
	)

	cmd := &cobra.Command{
		Use:   "sanitize",
		Short: "Normaliza HTML de stdin (<strong>/<em> => **x**/_x_)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := flags.logger(cmd)
			defer func() { _ = log.Sync() }()

			policy, err := markup.ParsePolicy(policyName)
			if err != nil {
				return err
			}

			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			log.Debug("sanitize", map[string]any{"bytes": len(raw), "policy": string(policy)})

			r := markup.NewRenderer(policy)
			var out string
			if toMarkdown {
				out, err = r.Markdown(string(raw))
				if err != nil {
					return err
				}
			} else {
				out = r.HTML(string(raw))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
			return err
		},
	}
	cmd.Flags().StringVar(&policyName, "policy", string(markup.PolicyUGC), "ugc|none")
	cmd.Flags().BoolVar(&toMarkdown, "markdown", false, "convertir a Markdown en vez de HTML")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
