package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-pptx/pkg/pptx"
)

var version = "0.1.0"

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

func execute() error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "pptx",
		Short:        "pptx inspects and builds OOXML presentation packages",
		Long:         `pptx is a command-line tool over the go-pptx object model: it opens presentation packages, dumps their part and relationship inventory, extracts single parts, and creates new packages from the bundled default template.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				config, err := pptx.LoadConfigFile(configPath)
				if err != nil {
					return err
				}
				pptx.SetGlobalConfig(config)
			}
			if verbose {
				pptx.Logger().SetLevel(charmlog.DebugLevel)
			}
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML configuration file")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newNewCmd())
	root.AddCommand(newExtractCmd())

	return root.Execute()
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Dump the part and relationship inventory of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, err := pptx.Open(args[0])
			if err != nil {
				return err
			}
			parts := pkg.Parts()
			fmt.Printf("%s: %d parts\n", args[0], len(parts))
			for _, part := range parts {
				fmt.Printf("  %-55s %s\n", part.PartName(), part.ContentType())
				for _, rel := range part.Rels().All() {
					target := rel.TargetRef()
					if !rel.IsExternal() {
						target = string(rel.TargetPart().PartName())
					}
					fmt.Printf("    %-6s -> %s\n", rel.RID(), target)
				}
			}
			return nil
		},
	}
}

func newNewCmd() *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create a package from the bundled default template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, err := pptx.New()
			if err != nil {
				return err
			}
			if title != "" {
				props, err := pkg.CoreProperties()
				if err != nil {
					return err
				}
				props.SetTitle(title)
			}
			return pkg.SaveFile(args[0])
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "document title to set in core properties")
	return cmd
}

func newExtractCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "extract <file> <partname>",
		Short: "Write one part's current bytes to a file or stdout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, err := pptx.Open(args[0])
			if err != nil {
				return err
			}
			for _, part := range pkg.Parts() {
				if string(part.PartName()) != args[1] {
					continue
				}
				blob, err := part.Blob()
				if err != nil {
					return err
				}
				if output == "" {
					_, err = os.Stdout.Write(blob)
					return err
				}
				return os.WriteFile(output, blob, 0o644)
			}
			return fmt.Errorf("no part named %s in %s", args[1], args[0])
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the part bytes to this file instead of stdout")
	return cmd
}
