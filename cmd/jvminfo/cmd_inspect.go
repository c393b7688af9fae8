package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MinusGix/RhoJVM/class"
	"github.com/MinusGix/RhoJVM/classfile"
	"github.com/MinusGix/RhoJVM/classpath"
	"github.com/MinusGix/RhoJVM/id"
)

func newInspectCmd() *cobra.Command {
	var manifestPath string
	var paths []string

	cmd := &cobra.Command{
		Use:   "inspect <class-name | file.class>",
		Short: "Print the identity and shape of a class",
		Long: `Print the identity and shape of a class.

The argument is either a path to a .class file, an internal-form class
name resolved against the classpath (e.g. java/util/List), or an array
descriptor (e.g. [I, [Ljava/lang/String;).

The classpath comes from --classpath entries and/or a classpath.toml
manifest given with --manifest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]

			if strings.HasSuffix(target, ".class") {
				return inspectFile(target)
			}

			loader, err := openLoader(manifestPath, paths)
			if err != nil {
				return err
			}
			defer loader.Close()

			if id.IsArrayClass(target) {
				return inspectArray(loader, target)
			}
			return inspectClass(loader, target)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "path to a classpath.toml manifest")
	cmd.Flags().StringSliceVarP(&paths, "classpath", "c", nil, "classpath entries (directories or jars)")

	return cmd
}

func openLoader(manifestPath string, paths []string) (*classpath.Loader, error) {
	var all []string
	if manifestPath != "" {
		m, err := classpath.LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		all = append(all, m.ResolvedPaths()...)
	}
	all = append(all, paths...)
	if len(all) == 0 {
		return nil, fmt.Errorf("no classpath given (use --classpath or --manifest)")
	}

	names := class.NewClassNames()
	loader, err := classpath.NewLoader(names, all...)
	if err != nil {
		return nil, fmt.Errorf("build classpath: %w", err)
	}
	return loader, nil
}

func inspectFile(path string) error {
	cf, err := classfile.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse class file: %w", err)
	}

	names := class.NewClassNames()
	thisName, err := class.NewClassFileData(id.ClassFileID{}, path, cf).ThisClassName()
	if err != nil {
		return fmt.Errorf("resolve class name: %w", err)
	}
	fileData := class.NewClassFileData(names.GCIDFromString(thisName), path, cf)

	return printClassFile(fileData, names)
}

func inspectClass(loader *classpath.Loader, name string) error {
	fileData, err := loader.LoadClassFile(name)
	if err != nil {
		return err
	}
	cls, err := loader.LoadClass(name)
	if err != nil {
		return err
	}

	if err := printClassFile(fileData, loader.Names()); err != nil {
		return err
	}
	printShape(class.VariantOfClass(cls), loader.Names())
	return nil
}

func inspectArray(loader *classpath.Loader, name string) error {
	array, err := loader.NewArrayClass(name)
	if err != nil {
		return err
	}

	desc, err := array.ComponentType().DescString(loader.Names())
	if err != nil {
		return fmt.Errorf("component descriptor: %w", err)
	}

	fmt.Printf("array class:  %s (id %d)\n", array.Name(), array.ID().Get())
	fmt.Printf("component:    %s\n", desc)
	printShape(class.VariantOfArray(array), loader.Names())
	return nil
}

func printClassFile(fileData *class.ClassFileData, names *class.ClassNames) error {
	thisName, err := fileData.ThisClassName()
	if err != nil {
		return fmt.Errorf("resolve class name: %w", err)
	}

	version := fileData.Version()
	fmt.Printf("class:        %s (id %d)\n", thisName, fileData.ID().Get())
	fmt.Printf("from:         %s\n", fileData.Path())
	fmt.Printf("version:      %d.%d\n", version.Major, version.Minor)
	fmt.Printf("flags:        %s\n", flagNames(fileData.AccessFlags()))

	superName, hasSuper, err := fileData.SuperClassName()
	if err != nil {
		return fmt.Errorf("resolve superclass: %w", err)
	}
	if hasSuper {
		fmt.Printf("super:        %s\n", superName)
	} else {
		fmt.Printf("super:        <none>\n")
	}

	for idx := range fileData.InterfaceIndices() {
		entry, ok := class.GetT(fileData, idx)
		if !ok {
			continue
		}
		if ifaceName, ok := fileData.GetText(entry.NameIndex); ok {
			fmt.Printf("implements:   %s\n", ifaceName)
		}
	}

	methods := fileData.Methods()
	fmt.Printf("methods:      %d\n", len(methods))
	for i := range methods {
		m := &methods[i]
		name, _ := fileData.GetText(m.NameIndex)
		descriptor, _ := fileData.GetText(m.DescriptorIndex)
		if md := classfile.ParseMethodDescriptor(descriptor); md != nil {
			fmt.Printf("  [%d] %s%s\n", i, name, md.String())
		} else {
			fmt.Printf("  [%d] %s %s\n", i, name, descriptor)
		}
	}
	return nil
}

func printShape(v class.ClassVariant, names *class.ClassNames) {
	if superID, ok := v.SuperID(); ok {
		if superName, err := names.NameFromGCID(superID); err == nil {
			fmt.Printf("super id:     %d (%s)\n", superID.Get(), superName)
		} else {
			fmt.Printf("super id:     %d\n", superID.Get())
		}
	}
	if cls, ok := v.AsClass(); ok {
		if pkgID, ok := cls.Package(); ok {
			if path, ok := names.PackagePath(pkgID); ok {
				fmt.Printf("package:      %s (id %d)\n", path, pkgID.Get())
			}
		}
		count := 0
		for range cls.MethodIDs() {
			count++
		}
		fmt.Printf("method ids:   %d\n", count)
	}
}

func flagNames(f classfile.AccessFlags) string {
	var names []string
	if f.IsPublic() {
		names = append(names, "public")
	}
	if f.IsFinal() {
		names = append(names, "final")
	}
	if f.IsSuper() {
		names = append(names, "super")
	}
	if f.IsInterface() {
		names = append(names, "interface")
	}
	if f.IsAbstract() {
		names = append(names, "abstract")
	}
	if f.IsSynthetic() {
		names = append(names, "synthetic")
	}
	if f.IsAnnotation() {
		names = append(names, "annotation")
	}
	if f.IsEnum() {
		names = append(names, "enum")
	}
	if len(names) == 0 {
		return "<none>"
	}
	return strings.Join(names, " ")
}
