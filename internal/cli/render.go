package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ppiankov/civicscore/internal/model"
	"github.com/ppiankov/civicscore/internal/score"
)

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// renderEntityScore prints an entity's breakdown as a table
func renderEntityScore(w io.Writer, realm model.Realm, s *model.EntityScore) {
	name := s.EntityID
	if s.EntityName != "" {
		name = fmt.Sprintf("%s (%s)", s.EntityName, s.EntityID)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("%s %s · %s %s", capitalize(realm.EntityTerm), name, realm.DomainTerm, s.DomainID))
	t.AppendHeader(table.Row{"#", "Question", "Weight", "Score", "Weighted", "Confidence", "Gap"})

	for _, row := range s.Breakdown {
		scoreCell := fmt.Sprintf("%.2f", row.Score)
		if !row.Analyzed {
			scoreCell = row.Answer
		}
		t.AppendRow(table.Row{
			row.QuestionID,
			text.WrapSoft(row.Question, 48),
			fmt.Sprintf("%g", row.Weight),
			scoreCell,
			fmt.Sprintf("%.2f", row.WeightedScore),
			fmt.Sprintf("%.0f%%", row.Confidence*100),
			text.WrapSoft(row.Gap, 40),
		})
	}

	t.AppendFooter(table.Row{
		"", "Overall", fmt.Sprintf("%g", s.TotalPossibleWeight), "",
		fmt.Sprintf("%.2f", s.TotalWeightedScore), "",
		fmt.Sprintf("%.1f/10 (%s)", s.OverallScore, score.Grade(s.OverallScore)),
	})
	t.Render()

	if len(s.Categories) > 0 {
		c := table.NewWriter()
		c.SetOutputMirror(w)
		c.SetStyle(table.StyleLight)
		c.AppendHeader(table.Row{"Category", "Questions", "Score"})
		for _, cat := range s.Categories {
			c.AppendRow(table.Row{cat.Category, cat.Questions, fmt.Sprintf("%.1f", cat.Score)})
		}
		c.Render()
	}
}

// renderDomainSummary prints a domain summary as a table, entities in directory order
func renderDomainSummary(w io.Writer, realm model.Realm, s *model.DomainSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("%s %s · %d/%d with data", realm.DomainTerm, s.DomainID, s.EntitiesWithData, s.TotalEntities))
	t.AppendHeader(table.Row{"ID", "Name", "Score", "Color"})

	for _, e := range s.Entities {
		scoreCell := "not yet analyzed"
		if e.Score != nil {
			scoreCell = fmt.Sprintf("%.1f", *e.Score)
		}
		t.AppendRow(table.Row{e.EntityID, e.Name, scoreCell, e.Color})
	}

	average := "n/a"
	if s.AverageScore != nil {
		average = fmt.Sprintf("%.1f", *s.AverageScore)
	}
	t.AppendFooter(table.Row{"", "Average", average, s.Color})
	t.Render()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
