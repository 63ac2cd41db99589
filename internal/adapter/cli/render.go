package cli

import (
	"github.com/burenotti/go_imc/internal/app/calcapp"
	"github.com/burenotti/go_imc/internal/app/screen"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"strconv"
)

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	resultStyle = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	fieldLabels = map[string]string{
		calcapp.FieldWeight: "peso",
		calcapp.FieldHeight: "altura",
	}

	historyHeaders = []string{"Nome", "Data", "Hora", "Peso", "Altura", "IMC", "Classificação"}
)

func (a *App) renderResult(res screen.Result) {
	a.printf("%s\n", resultStyle.Render("IMC: "+res.Formatted+" ("+res.Classification+")"))
}

func (a *App) renderNotice(n screen.Notice) {
	style := noticeStyle
	if n.Kind == screen.NoticeFailure {
		style = errorStyle
	}
	a.printf("%s\n", style.Render(n.Message))
}

func (a *App) renderFields() {
	a.renderTable([]string{"Campo", "Valor"}, [][]string{
		{"nome", a.name.Text()},
		{"peso", a.weight.Text()},
		{"altura", a.height.Text()},
	})
}

func (a *App) renderHistory(rows []screen.Row) {
	cells := lo.Map(rows, func(r screen.Row, _ int) []string {
		if r.Placeholder {
			return []string{r.Name, "", "", "", "", "", ""}
		}
		return []string{
			r.Name,
			r.Date,
			r.Time,
			strconv.FormatFloat(r.Weight, 'f', -1, 64),
			strconv.FormatFloat(r.Height, 'f', 2, 64),
			r.BMI,
			r.Class,
		}
	})
	a.renderTable(historyHeaders, cells)
}

func (a *App) renderTable(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	a.printf("%s\n", t.String())
}
