package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MinusGix/RhoJVM/classpath"
)

func newClasspathCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "classpath",
		Short: "Print the classpath from a manifest or lib directory",
		Long: `Print the classpath as a colon-separated list of entries.

If a classpath.toml manifest exists (or is given with -m), its entries
are printed. Otherwise all .jar files in the lib/ directory are listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasspath(manifestPath)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "classpath.toml", "path to a classpath.toml manifest")

	return cmd
}

func runClasspath(manifestPath string) error {
	if _, err := os.Stat(manifestPath); err == nil {
		m, err := classpath.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(m.ResolvedPaths(), ":"))
		return nil
	}
	return runClasspathFromLib("lib")
}

func runClasspathFromLib(libDir string) error {
	entries, err := os.ReadDir(libDir)
	if err != nil {
		return fmt.Errorf("read lib directory %s: %w", libDir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ".jar" {
			paths = append(paths, filepath.Join(libDir, entry.Name()))
		}
	}

	fmt.Println(strings.Join(paths, ":"))
	return nil
}
