// Specialize rewrites the generic in-place sort into an int-only copy that compares with < instead
// of calling less. It is run by go generate in the package directory.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"slices"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

// renames maps every function to specialize to the name of its specialized copy.
var renames = map[string]string{
	"sortRange":     "sortRangeInts",
	"PartitionFunc": "partitionInts",
}

// dropped lists the parameters that only exist to make the generic version configurable.
var dropped = []string{"less", "policy"}

func main() {
	out := flag.String("o", "gen_sort_ints.go", "output file")
	flag.Parse()

	fset := token.NewFileSet()
	var pkg string
	var decls []ast.Decl
	var imports []string
	for _, filename := range flag.Args() {
		file, err := parser.ParseFile(fset, filename, nil, parser.SkipObjectResolution)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error parsing input: %v\n", err)
			os.Exit(1)
		}
		pkg = file.Name.Name
		for _, spec := range file.Imports {
			imports = append(imports, strings.Trim(spec.Path.Value, `"`))
		}
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			if _, ok := renames[fd.Name.Name]; !ok {
				continue
			}
			decls = append(decls, specialize(fd))
		}
	}
	if len(decls) != len(renames) {
		fmt.Fprintf(os.Stderr, "found %d of %d functions to specialize\n", len(decls), len(renames))
		os.Exit(1)
	}

	file := &ast.File{
		Name:  ast.NewIdent(pkg),
		Decls: decls,
	}
	// Keep only the imports the specialized code still refers to.
	for _, path := range imports {
		astutil.AddImport(fset, file, path)
		if !astutil.UsesImport(file, path) {
			astutil.DeleteImport(fset, file, path)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by specialize; DO NOT EDIT.\n\n")
	if err := format.Node(&buf, fset, file); err != nil {
		fmt.Fprintf(os.Stderr, "error formatting result: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing result: %v\n", err)
		os.Exit(1)
	}
}

func specialize(fd *ast.FuncDecl) *ast.FuncDecl {
	fd.Doc = nil
	fd.Name.Name = renames[fd.Name.Name]
	fd.Type.TypeParams = nil

	// Remove less and policy from the parameters.
	fd.Type.Params.List = slices.DeleteFunc(fd.Type.Params.List, func(f *ast.Field) bool {
		if len(f.Names) != 1 {
			return false
		}
		return slices.Contains(dropped, f.Names[0].Name)
	})

	// Specialize all type parameters in the parameter list.
	for _, param := range fd.Type.Params.List {
		param.Type = astutil.Apply(param.Type, func(c *astutil.Cursor) bool {
			if ident, ok := c.Node().(*ast.Ident); ok && ident.Name == "T" {
				ident.Name = "int"
				return false
			}
			return true
		}, nil).(ast.Expr)
	}

	// Specialize the body: drop statements that depend on the pivot policy, redirect calls to the
	// specialized functions, and replace less invocations with <.
	fd.Body = astutil.Apply(fd.Body, func(c *astutil.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.IfStmt:
			if mentions(n.Cond, "policy") {
				c.Delete()
				return false
			}
		case *ast.CallExpr:
			fun, ok := n.Fun.(*ast.Ident)
			if !ok {
				return true
			}
			if name, ok := renames[fun.Name]; ok {
				fun.Name = name
				n.Args = slices.DeleteFunc(n.Args, func(arg ast.Expr) bool {
					ident, ok := arg.(*ast.Ident)
					return ok && slices.Contains(dropped, ident.Name)
				})
				return true
			}
			if fun.Name == "less" && len(n.Args) == 2 {
				c.Replace(&ast.BinaryExpr{
					X:  n.Args[0],
					Op: token.LSS,
					Y:  n.Args[1],
				})
			}
		}
		return true
	}, nil).(*ast.BlockStmt)
	return fd
}

func mentions(expr ast.Expr, name string) bool {
	found := false
	ast.Inspect(expr, func(n ast.Node) bool {
		if ident, ok := n.(*ast.Ident); ok && ident.Name == name {
			found = true
		}
		return !found
	})
	return found
}
