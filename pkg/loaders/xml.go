package loaders

import (
	"context"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/arthur-debert/dview/pkg/types"
)

// loadXML turns elements into rows. By default the rows are the children
// of the root element; the "path" param selects them with an etree path
// such as "/catalog/book". Attributes and child element text become
// columns; a leaf element's own text goes in the "text" column.
func loadXML(ctx context.Context, src types.Source) (*types.Dataset, error) {
	rc, err := openSource(src.Path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(rc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceParse, "invalid XML in %s", src.Path)
	}

	var elements []*etree.Element
	if p := src.Param("path", ""); p != "" {
		path, err := etree.CompilePath(p)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid element path %q", p)
		}
		elements = doc.FindElementsPath(path)
	} else if root := doc.Root(); root != nil {
		elements = root.ChildElements()
	}

	records := make([]map[string]any, 0, len(elements))
	for i, el := range elements {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		records = append(records, elementRecord(el))
	}

	return types.NewDatasetFromRecords(records), nil
}

func elementRecord(el *etree.Element) map[string]any {
	rec := make(map[string]any)
	for _, attr := range el.Attr {
		rec[attr.FullKey()] = attr.Value
	}

	children := el.ChildElements()
	if len(children) == 0 {
		if text := strings.TrimSpace(el.Text()); text != "" {
			rec["text"] = text
		}
		return rec
	}

	for _, child := range children {
		rec[child.FullTag()] = strings.TrimSpace(child.Text())
	}
	return rec
}
