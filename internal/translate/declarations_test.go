// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package translate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/cs2ts/internal/naming"
	"github.com/petar-djukic/cs2ts/internal/syntax"
	"github.com/petar-djukic/cs2ts/internal/syntax/syntaxtest"
	"github.com/petar-djukic/cs2ts/internal/tsast"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// widgetUnit builds:
//
//	namespace Acme {
//	    /// <summary>A widget.</summary>
//	    public class Widget : Gadget, IShape {       // lines 2-40
//	        private int size;                         // 3
//	        public Widget(int size) { this.size = size; } // 5
//	        public int Area() => size * 2;            // 10
//	        [AlternateSignature] public extern void Resize(int w); // 12
//	        public void Resize(int w, int h) { }      // 14
//	        public string Name { get; set; }          // 16
//	        public int Count { get { return size; } } // 18
//	        public const int Max = 10;                // 20
//	        public class Part { }                     // 22-25
//	        static Widget() { }                       // 30
//	    }
//	    public interface IShape { int Area(); string Name { get; } } // 50-55
//	    public enum Color { Red, Blue = 2 }           // 60-63
//	}
type widgetUnit struct {
	f      *fixture
	gadget *syntaxtest.Symbol
}

func newWidgetUnit() *widgetUnit {
	f := newFixture()
	u := &widgetUnit{f: f}
	m := f.model

	u.gadget = syntaxtest.NewType(f.lib, "Lib.Gadget")
	f.direct = []types.Symbol{u.gadget}

	widget := syntaxtest.NewType(f.app, "Acme.Widget")
	shape := syntaxtest.NewType(f.app, "Acme.IShape", syntaxtest.Kind(types.Interface))
	color := syntaxtest.NewType(f.app, "Acme.Color", syntaxtest.Kind(types.Enum))

	size := widget.Field("size")
	sizeParam := syntaxtest.Param("size", nil)
	ctor := widget.Constructor([]*syntaxtest.Symbol{sizeParam})
	area := widget.Method("Area", nil)
	alt := widget.Method("Resize", []*syntaxtest.Symbol{syntaxtest.Param("w", nil)},
		syntaxtest.WithAttr(naming.AttrAlternateSignature))
	resize := widget.Method("Resize", []*syntaxtest.Symbol{syntaxtest.Param("w", nil), syntaxtest.Param("h", nil)})
	name := widget.Property("Name")
	count := widget.Property("Count")
	maxField := widget.Field("Max", syntaxtest.Static(), syntaxtest.Public())
	part := widget.NestedType("Part")

	gadgetRef := &syntax.TypeRef{NodeInfo: syntax.At(2, 20), Name: "Gadget"}
	shapeRef := &syntax.TypeRef{NodeInfo: syntax.At(2, 28), Name: "IShape"}
	m.Bind(gadgetRef, u.gadget).Bind(shapeRef, shape)

	sizeDecl := &syntax.VariableDeclarator{NodeInfo: syntax.At(3, 17), Name: "size"}
	m.Declare(sizeDecl, size)
	sizeField := &syntax.FieldDecl{NodeInfo: lines(3, 3), Modifiers: syntax.Modifiers{"private"}, Type: intType(),
		Variables: []*syntax.VariableDeclarator{sizeDecl}}

	thisSize := &syntax.MemberAccess{NodeInfo: syntax.At(5, 30), Expr: &syntax.This{NodeInfo: syntax.At(5, 30)}, Name: "size"}
	sizeArg := ident(5, "size")
	m.Bind(thisSize, size).Bind(sizeArg, sizeParam)
	ctorDecl := &syntax.ConstructorDecl{
		NodeInfo:   lines(5, 5),
		Modifiers:  syntax.Modifiers{"public"},
		Name:       "Widget",
		Parameters: []*syntax.Parameter{{Name: "size", Type: intType()}},
		Body: &syntax.Block{Statements: []syntax.Node{
			&syntax.ExpressionStatement{Expr: &syntax.Assignment{Left: thisSize, Operator: "=", Right: sizeArg}},
		}},
	}
	m.Declare(ctorDecl, ctor)

	sizeRef := ident(10, "size")
	m.Bind(sizeRef, size)
	areaDecl := &syntax.MethodDecl{
		NodeInfo:       lines(10, 10),
		Modifiers:      syntax.Modifiers{"public"},
		ReturnType:     intType(),
		Name:           "Area",
		ExpressionBody: &syntax.Binary{Left: sizeRef, Operator: "*", Right: num("2")},
	}
	m.Declare(areaDecl, area)

	altDecl := &syntax.MethodDecl{NodeInfo: lines(12, 12), Modifiers: syntax.Modifiers{"public", "extern"},
		ReturnType: &syntax.TypeRef{Name: "void"}, Name: "Resize",
		Parameters: []*syntax.Parameter{{Name: "w", Type: intType()}}}
	m.Declare(altDecl, alt)

	resizeDecl := &syntax.MethodDecl{NodeInfo: lines(14, 14), Modifiers: syntax.Modifiers{"public"},
		ReturnType: &syntax.TypeRef{Name: "void"}, Name: "Resize",
		Parameters: []*syntax.Parameter{{Name: "w", Type: intType()}, {Name: "h", Type: intType()}},
		Body:       &syntax.Block{}}
	m.Declare(resizeDecl, resize)

	nameDecl := &syntax.PropertyDecl{NodeInfo: lines(16, 16), Modifiers: syntax.Modifiers{"public"},
		Type: &syntax.TypeRef{Name: "string", Predefined: true}, Name: "Name",
		Getter: &syntax.Accessor{}, Setter: &syntax.Accessor{}}
	m.Declare(nameDecl, name)

	countRef := ident(18, "size")
	m.Bind(countRef, size)
	countDecl := &syntax.PropertyDecl{NodeInfo: lines(18, 18), Modifiers: syntax.Modifiers{"public"},
		Type: intType(), Name: "Count",
		Getter: &syntax.Accessor{Body: &syntax.Block{Statements: []syntax.Node{&syntax.ReturnStatement{Expr: countRef}}}}}
	m.Declare(countDecl, count)

	maxDecl := &syntax.VariableDeclarator{NodeInfo: syntax.At(20, 26), Name: "Max", Initializer: num("10")}
	m.Declare(maxDecl, maxField)
	maxField2 := &syntax.FieldDecl{NodeInfo: lines(20, 20), Modifiers: syntax.Modifiers{"public", "const"}, Type: intType(),
		Variables: []*syntax.VariableDeclarator{maxDecl}}

	partDecl := &syntax.TypeDecl{NodeInfo: lines(22, 25), TypeKind: types.Class, Name: "Part", Modifiers: syntax.Modifiers{"public"}}
	m.Declare(partDecl, part)

	staticCtor := &syntax.ConstructorDecl{NodeInfo: lines(30, 30), Modifiers: syntax.Modifiers{"static"}, Name: "Widget",
		Body: &syntax.Block{}}

	widgetDecl := &syntax.TypeDecl{
		NodeInfo:  lines(2, 40),
		TypeKind:  types.Class,
		Name:      "Widget",
		Modifiers: syntax.Modifiers{"public"},
		BaseTypes: []*syntax.TypeRef{gadgetRef, shapeRef},
		Members:   []syntax.Node{sizeField, ctorDecl, areaDecl, altDecl, resizeDecl, nameDecl, countDecl, maxField2, partDecl, staticCtor},
		Doc:       &syntax.DocComment{Summary: "A widget."},
	}
	m.Declare(widgetDecl, widget)

	shapeDecl := &syntax.TypeDecl{
		NodeInfo: lines(50, 55),
		TypeKind: types.Interface,
		Name:     "IShape",
		Members: []syntax.Node{
			&syntax.MethodDecl{NodeInfo: lines(51, 51), ReturnType: intType(), Name: "Area"},
			&syntax.PropertyDecl{NodeInfo: lines(52, 52), Type: &syntax.TypeRef{Name: "string", Predefined: true},
				Name: "Name", Getter: &syntax.Accessor{}},
		},
	}
	m.Declare(shapeDecl, shape)

	colorDecl := &syntax.TypeDecl{
		NodeInfo: lines(60, 63),
		TypeKind: types.Enum,
		Name:     "Color",
		Members: []syntax.Node{
			&syntax.EnumMemberDecl{NodeInfo: lines(61, 61), Name: "Red"},
			&syntax.EnumMemberDecl{NodeInfo: lines(62, 62), Name: "Blue", Value: num("2")},
		},
	}
	m.Declare(colorDecl, color)

	f.root = &syntax.CompilationUnit{Members: []syntax.Node{
		&syntax.NamespaceDecl{Name: "Acme", Members: []syntax.Node{widgetDecl, shapeDecl, colorDecl}},
	}}
	return u
}

func TestTranslate_Unit(t *testing.T) {
	u := newWidgetUnit()
	res := u.f.visitor(t).Translate()

	require.Len(t, res.Module.Items, 4)
	widget, ok := res.Module.Items[0].(*tsast.ClassDecl)
	require.True(t, ok)
	part, ok := res.Module.Items[1].(*tsast.ClassDecl)
	require.True(t, ok)
	shape, ok := res.Module.Items[2].(*tsast.InterfaceDecl)
	require.True(t, ok)
	color, ok := res.Module.Items[3].(*tsast.EnumDecl)
	require.True(t, ok)

	assert.Equal(t, []types.Symbol{u.gadget}, res.Imports)
	assert.Equal(t, []string{CodeTranslationNotSupported}, codes(res.Diagnostics), "static constructor")

	t.Run("class", func(t *testing.T) {
		assert.Equal(t, "Widget", widget.Name)
		assert.True(t, widget.Exported)
		require.NotNil(t, widget.Doc)
		assert.Equal(t, "A widget.", widget.Doc.Description)
		require.NotNil(t, widget.Extends)
		assert.Equal(t, "Gadget", widget.Extends.Name)
		require.Len(t, widget.Implements, 1)
		assert.Equal(t, "IShape", widget.Implements[0].Name)
	})

	t.Run("nested type lifted", func(t *testing.T) {
		assert.Equal(t, "Part", part.Name)
		assert.True(t, part.Exported)
	})

	t.Run("members", func(t *testing.T) {
		var emitted []string
		for _, m := range widget.Members {
			emitted = append(emitted, tsast.Emit(m))
		}
		require.Len(t, emitted, 7)
		assert.Equal(t, "private size: number;", emitted[0])
		assert.Contains(t, emitted[1], "constructor(size: number)")
		assert.Contains(t, emitted[1], "this.size = size;")
		assert.Contains(t, emitted[2], "area(): number")
		assert.Contains(t, emitted[2], "return this.size * 2;")
		assert.Contains(t, emitted[3], "resize(w: number, h: number): void")
		assert.Equal(t, "name: string;", emitted[4])
		assert.Contains(t, emitted[5], "get count(): number")
		assert.Contains(t, emitted[5], "return this.size;")
		assert.Equal(t, "static readonly max: number = 10;", emitted[6])
	})

	t.Run("interface", func(t *testing.T) {
		assert.Equal(t, "IShape", shape.Name)
		require.Len(t, shape.Members, 2)
		assert.Equal(t, "area(): number;", tsast.Emit(shape.Members[0]))
		assert.Equal(t, "name: string;", tsast.Emit(shape.Members[1]))
	})

	t.Run("enum", func(t *testing.T) {
		require.Len(t, color.Members, 2)
		assert.Equal(t, "red", color.Members[0].Name)
		assert.Nil(t, color.Members[0].Value)
		assert.Equal(t, "blue", color.Members[1].Name)
		assert.Equal(t, "2", tsast.Emit(color.Members[1].Value))
	})
}

func TestTranslate_AccessModifiers(t *testing.T) {
	f := newFixture()
	tests := []struct {
		written syntax.Modifiers
		want    tsast.Modifiers
	}{
		{written: syntax.Modifiers{"public"}, want: tsast.Modifiers{}},
		{written: syntax.Modifiers{"internal"}, want: tsast.Modifiers{}},
		{written: syntax.Modifiers{"protected"}, want: tsast.Modifiers{Access: "protected"}},
		{written: syntax.Modifiers{"private", "static"}, want: tsast.Modifiers{Access: "private", Static: true}},
		{written: nil, want: tsast.Modifiers{Access: "private"}},
		{written: syntax.Modifiers{"public", "readonly"}, want: tsast.Modifiers{Readonly: true}},
	}
	v := f.visitor(t)
	for _, tt := range tests {
		assert.Equal(t, tt.want, v.modifiers(&syntax.FieldDecl{}, tt.written), "%v", tt.written)
	}
}

func TestTranslate_Params(t *testing.T) {
	f := newFixture()
	v := f.visitor(t)
	ps := v.params([]*syntax.Parameter{
		{Name: "a", Type: intType()},
		{Name: "b", Type: intType(), Default: num("3")},
		{Name: "rest", Type: &syntax.TypeRef{Name: "int", Predefined: true, ArrayRanks: []int{1}}, Modifiers: syntax.Modifiers{"params"}},
	})
	require.Len(t, ps, 3)
	assert.Equal(t, "a: number", tsast.Emit(ps[0]))
	assert.True(t, ps[1].Optional)
	assert.True(t, ps[2].Rest)
	assert.Empty(t, v.diags.Items())

	v.params([]*syntax.Parameter{{Name: "o", Type: intType(), Modifiers: syntax.Modifiers{"out"}}})
	assert.Equal(t, []string{CodeTranslationNotSupported}, codes(v.diags.Items()))
}

func TestTranslate_UnsupportedTopLevel(t *testing.T) {
	f := newFixture()
	f.root = &syntax.CompilationUnit{Members: []syntax.Node{
		&syntax.Unsupported{What: "delegate_declaration"},
		&syntax.TypeDecl{TypeKind: types.Delegate, Name: "Handler"},
	}}
	res := f.visitor(t).Translate()
	assert.Empty(t, res.Module.Items)
	require.Len(t, res.Diagnostics, 2)
	assert.Contains(t, res.Diagnostics[0].Message, "delegate_declaration")
}

func TestGuard_RecoversPanics(t *testing.T) {
	f := newFixture()
	v := f.visitor(t)
	v.guard(&syntax.This{NodeInfo: syntax.At(7, 3)}, func() { panic(errors.New("boom")) })

	items := v.diags.Items()
	require.Len(t, items, 1)
	assert.Equal(t, CodeInternalError, items[0].Code)
	assert.Equal(t, 7, items[0].Location.Line)
	assert.Contains(t, items[0].Message, "boom")
}
