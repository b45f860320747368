package display

import (
	"encoding/json"
	"io"
	"time"

	"github.com/arthur-debert/dview/pkg/errors"
	"github.com/arthur-debert/dview/pkg/types"
)

// jsonRenderer renders machine-readable output
type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(w io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

type jsonDataset struct {
	Title   string              `json:"title,omitempty"`
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
	Total   int                 `json:"total"`
}

type jsonInstance struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Loader    string    `json:"loader"`
	Source    string    `json:"source"`
	Rows      int       `json:"rows"`
	Columns   []string  `json:"columns"`
	CreatedAt time.Time `json:"created_at"`
}

type jsonError struct {
	Code    errors.ErrorCode       `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (r *jsonRenderer) RenderDataset(title string, ds *types.Dataset, total int) error {
	out := jsonDataset{
		Title:   title,
		Columns: ds.Columns,
		Rows:    make([]map[string]string, 0, ds.Len()),
		Total:   total,
	}
	if out.Columns == nil {
		out.Columns = []string{}
	}
	for _, row := range ds.Rows {
		rec := make(map[string]string, len(ds.Columns))
		for i, col := range ds.Columns {
			rec[col] = row[i]
		}
		out.Rows = append(out.Rows, rec)
	}
	return r.encoder.Encode(out)
}

func (r *jsonRenderer) RenderInstances(instances []*types.Instance) error {
	out := make([]jsonInstance, 0, len(instances))
	for _, inst := range instances {
		var columns []string
		if inst.Dataset != nil {
			columns = inst.Dataset.Columns
		}
		out = append(out, jsonInstance{
			ID:        inst.ID,
			Name:      inst.Name,
			Loader:    inst.Loader,
			Source:    inst.Source.Path,
			Rows:      inst.Dataset.Len(),
			Columns:   columns,
			CreatedAt: inst.CreatedAt,
		})
	}
	return r.encoder.Encode(out)
}

func (r *jsonRenderer) RenderLoaders(rows []LoaderRow) error {
	if rows == nil {
		rows = []LoaderRow{}
	}
	return r.encoder.Encode(rows)
}

func (r *jsonRenderer) RenderMarkdown(content string) error {
	return r.encoder.Encode(map[string]string{"markdown": content})
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]jsonError{"error": {
		Code:    errors.GetErrorCode(err),
		Message: err.Error(),
		Details: errors.GetErrorDetails(err),
	}})
}
