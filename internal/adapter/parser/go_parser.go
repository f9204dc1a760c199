package parser

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	goparser "go/parser"
	"go/token"
	"strings"

	"doccov/internal/domain"
)

// GoParser extracts documentable units from Go source using the
// standard library AST. The file's package clause becomes the module
// unit, named type declarations become class units, and function
// declarations become function or method units.
type GoParser struct{}

// NewGoParser creates a new Go outline parser.
func NewGoParser() *GoParser {
	return &GoParser{}
}

// Language returns the language this parser handles.
func (p *GoParser) Language() string {
	return "go"
}

// Parse parses Go source and returns its outline in source order.
// Qualified names are rooted at the package name: pkg, pkg.Type,
// pkg.Func, pkg.Type.Method.
func (p *GoParser) Parse(filename, content string) ([]domain.Unit, error) {
	fset := token.NewFileSet()
	f, err := goparser.ParseFile(fset, filename, content, goparser.ParseComments)
	if err != nil {
		return nil, err
	}

	pkg := f.Name.Name

	moduleDoc := ""
	if f.Doc != nil {
		moduleDoc = f.Doc.Text()
	}

	units := []domain.Unit{{
		QualifiedName: pkg,
		Kind:          domain.KindModule,
		StartLine:     fset.Position(f.Pos()).Line,
		EndLine:       fset.Position(f.End()).Line,
		Doc:           moduleDoc,
	}}

	// Pre-pass so methods can resolve receiver types declared later in
	// the file. Method units parent under their receiver type when it is
	// declared in the same file, otherwise under the module.
	typeNames := make(map[string]string)
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			typeNames[ts.Name.Name] = pkg + "." + ts.Name.Name
		}
	}

	// Go allows repeated declarations of init (and blank identifiers),
	// so repeated extracted names get an ordinal suffix, much as the
	// linker numbers multiple init funcs.
	seen := map[string]int{pkg: 1}

	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			unit := p.extractFunction(fset, d, pkg, typeNames)
			unit.QualifiedName = uniqueName(seen, unit.QualifiedName)
			units = append(units, unit)

		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, unit := range p.extractTypes(fset, d, pkg) {
				unit.QualifiedName = uniqueName(seen, unit.QualifiedName)
				units = append(units, unit)
			}
		}
	}

	return units, nil
}

// uniqueName registers name in seen and returns it unchanged on first
// use; repeated names get an ordinal suffix (init, init.1, init.2).
func uniqueName(seen map[string]int, name string) string {
	n := seen[name]
	seen[name] = n + 1
	if n == 0 {
		return name
	}
	for {
		candidate := fmt.Sprintf("%s.%d", name, n)
		if seen[candidate] == 0 {
			seen[candidate] = 1
			return candidate
		}
		n++
	}
}

// extractFunction extracts a function or method declaration.
func (p *GoParser) extractFunction(fset *token.FileSet, fn *ast.FuncDecl, pkg string, typeNames map[string]string) domain.Unit {
	startPos := fset.Position(fn.Pos())
	endPos := fset.Position(fn.End())

	var sig strings.Builder
	sig.WriteString("func ")
	if fn.Recv != nil && len(fn.Recv.List) > 0 {
		sig.WriteString("(")
		sig.WriteString(p.formatFieldList(fn.Recv))
		sig.WriteString(") ")
	}
	sig.WriteString(fn.Name.Name)
	sig.WriteString("(")
	if fn.Type.Params != nil {
		sig.WriteString(p.formatFieldList(fn.Type.Params))
	}
	sig.WriteString(")")
	if fn.Type.Results != nil && len(fn.Type.Results.List) > 0 {
		sig.WriteString(" ")
		if len(fn.Type.Results.List) > 1 || (len(fn.Type.Results.List) == 1 && fn.Type.Results.List[0].Names != nil) {
			sig.WriteString("(")
			sig.WriteString(p.formatFieldList(fn.Type.Results))
			sig.WriteString(")")
		} else {
			sig.WriteString(p.formatFieldList(fn.Type.Results))
		}
	}

	doc := ""
	if fn.Doc != nil {
		doc = fn.Doc.Text()
	}

	kind := domain.KindFunction
	name := pkg + "." + fn.Name.Name
	parent := pkg
	if fn.Recv != nil {
		kind = domain.KindMethod
		recv := receiverTypeName(fn.Recv)
		name = pkg + "." + recv + "." + fn.Name.Name
		if qualified, ok := typeNames[recv]; ok {
			parent = qualified
		}
	}

	return domain.Unit{
		QualifiedName: name,
		Kind:          kind,
		Parent:        parent,
		StartLine:     startPos.Line,
		EndLine:       endPos.Line,
		Doc:           doc,
		Signature:     sig.String(),
	}
}

// extractTypes extracts named type declarations as class units.
func (p *GoParser) extractTypes(fset *token.FileSet, decl *ast.GenDecl, pkg string) []domain.Unit {
	var units []domain.Unit

	declStart := fset.Position(decl.Pos())
	declEnd := fset.Position(decl.End())

	for _, spec := range decl.Specs {
		ts := spec.(*ast.TypeSpec)
		specStart := fset.Position(ts.Pos())
		specEnd := fset.Position(ts.End())

		start := specStart.Line
		end := specEnd.Line
		if decl.Lparen == 0 {
			start = declStart.Line
			end = declEnd.Line
		}

		doc := ""
		if ts.Doc != nil {
			doc = ts.Doc.Text()
		} else if decl.Doc != nil && decl.Lparen == 0 {
			doc = decl.Doc.Text()
		}

		units = append(units, domain.Unit{
			QualifiedName: pkg + "." + ts.Name.Name,
			Kind:          domain.KindClass,
			Parent:        pkg,
			StartLine:     start,
			EndLine:       end,
			Doc:           doc,
			Signature:     p.formatTypeSignature(ts),
		})
	}

	return units
}

// formatFieldList formats a field list (parameters, results, receiver).
func (p *GoParser) formatFieldList(fl *ast.FieldList) string {
	if fl == nil || len(fl.List) == 0 {
		return ""
	}

	var parts []string
	for _, field := range fl.List {
		typeStr := p.formatExpr(field.Type)
		if len(field.Names) == 0 {
			parts = append(parts, typeStr)
		} else {
			var names []string
			for _, name := range field.Names {
				names = append(names, name.Name)
			}
			parts = append(parts, strings.Join(names, ", ")+" "+typeStr)
		}
	}
	return strings.Join(parts, ", ")
}

// formatExpr formats an expression to string.
func (p *GoParser) formatExpr(expr ast.Expr) string {
	var buf bytes.Buffer
	format.Node(&buf, token.NewFileSet(), expr)
	return buf.String()
}

// formatTypeSignature creates a signature for a type declaration.
func (p *GoParser) formatTypeSignature(ts *ast.TypeSpec) string {
	var sig strings.Builder
	sig.WriteString("type ")
	sig.WriteString(ts.Name.Name)
	switch ts.Type.(type) {
	case *ast.StructType:
		sig.WriteString(" struct")
	case *ast.InterfaceType:
		sig.WriteString(" interface")
	default:
		sig.WriteString(" ")
		sig.WriteString(p.formatExpr(ts.Type))
	}
	return sig.String()
}

// receiverTypeName returns the bare type name of a method receiver,
// unwrapping pointers and type parameters.
func receiverTypeName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}
	expr := recv.List[0].Type
	for {
		switch t := expr.(type) {
		case *ast.StarExpr:
			expr = t.X
		case *ast.IndexExpr:
			expr = t.X
		case *ast.IndexListExpr:
			expr = t.X
		case *ast.Ident:
			return t.Name
		default:
			return ""
		}
	}
}
