package elements

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/render"
)

// Classifiers is the classifier management table plus the form to create a
// new classifier. Finalisation state is shown, never changed, here.
type Classifiers struct{}

type classifierRow struct {
	Label    string
	Positive int
	Negative int
	Total    int
	Accuracy string
	Status   string
	// Finalize is the finalize action; when its URL is empty the label is
	// shown as plain status text.
	Finalize Link
	Edit     Link
	Delete   Link
}

type classifiersView struct {
	Form  FormTarget
	Title string
	Rows  []classifierRow
	Empty string
}

func (e *Classifiers) Name() string { return NameClassifiers }

func (e *Classifiers) Render(_ context.Context, page *render.Page, w io.Writer) error {
	classifiers := decodeClassifiers(page.Data)

	view := classifiersView{
		Form:  formTarget(page, "admin", "manageClassifiers", "createclassifier"),
		Title: page.T("classifiers_title"),
	}
	if len(classifiers) == 0 {
		view.Empty = page.T("classifiers_none")
	}
	for _, c := range classifiers {
		view.Rows = append(view.Rows, classifierRowFor(page, c))
	}
	return renderView(page, NameClassifiers, view, w)
}

func classifierRowFor(page *render.Page, c model.Classifier) classifierRow {
	row := classifierRow{
		Label:    c.Label,
		Positive: c.Positive,
		Negative: c.Negative,
		Total:    c.Total,
		Accuracy: page.T("classifiers_na"),
		Status:   c.Finalized.String(),
		Edit: Link{
			Label: page.T("classifiers_edit"),
			URL:   adminURL(page, "manageClassifiers", "arg", "editclassifier", "name", c.Label),
			Class: "edit",
		},
		Delete: Link{
			Label:   page.T("classifiers_delete"),
			URL:     adminURL(page, "manageClassifiers", "arg", "deleteclassifier", "name", c.Label),
			Class:   "delete",
			Confirm: page.T("classifiers_confirm_delete", c.Label),
		},
	}
	if c.Accuracy != nil {
		row.Accuracy = fmt.Sprintf("%.1f%%", *c.Accuracy*100)
	}

	switch c.Finalized {
	case model.Finalized:
		row.Finalize = Link{Label: page.T("classifiers_finalized"), Class: "finalized"}
	case model.Finalizing:
		row.Finalize = Link{Label: page.T("classifiers_finalizing"), Class: "finalizing"}
	default:
		row.Finalize = Link{Label: page.T("classifiers_finalize"), Class: "finalize"}
		if c.CanFinalize() {
			row.Finalize.URL = adminURL(page, "manageClassifiers", "arg", "finalizeclassifier", "name", c.Label)
		}
	}
	return row
}

// decodeClassifiers accepts either a list of classifiers or a map keyed by
// label. Map entries are sorted by label and take their key as label when
// the record has none. Anything else yields no rows.
func decodeClassifiers(data model.Data) []model.Classifier {
	if list, ok := decodeSection[[]model.Classifier](data, model.KeyClassifiers); ok {
		return list
	}
	byLabel, ok := decodeSection[map[string]model.Classifier](data, model.KeyClassifiers)
	if !ok {
		return nil
	}
	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	out := make([]model.Classifier, 0, len(labels))
	for _, label := range labels {
		c := byLabel[label]
		if c.Label == "" {
			c.Label = label
		}
		out = append(out, c)
	}
	return out
}
