package handlers

import (
	"log"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/models"
	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/services"
	"github.com/Bipul-Dubey/placement-dashboard/shared/constants"
	"github.com/gin-gonic/gin"
)

const dashboardTemplate = "dashboard.html"

// formValues echoes the sidebar inputs back into the page.
type formValues struct {
	CGPA          string
	Branch        string
	MajorProjects string
	MiniProjects  string
	Communication string
	Internship    string
}

func defaultForm() formValues {
	return formValues{
		CGPA:          "0.0",
		Branch:        string(constants.BranchCSE),
		MajorProjects: "1",
		MiniProjects:  "2",
		Communication: "7",
		Internship:    string(constants.InternshipYes),
	}
}

func formFromRequest(c *gin.Context) formValues {
	f := defaultForm()
	f.CGPA = c.DefaultPostForm("cgpa", f.CGPA)
	f.Branch = c.DefaultPostForm("branch", f.Branch)
	f.MajorProjects = c.DefaultPostForm("major_projects", f.MajorProjects)
	f.MiniProjects = c.DefaultPostForm("mini_projects", f.MiniProjects)
	f.Communication = c.DefaultPostForm("communication", f.Communication)
	f.Internship = c.DefaultPostForm("internship", f.Internship)
	return f
}

type chartView struct {
	ID     string
	Title  string
	Source models.ChartSource
	HTML   string
}

type dashboardView struct {
	Branches    []string
	Internships []string
	Form        formValues

	Outcome      *models.PredictOutcome
	PredictError string
	Charts       []chartView

	Insights      *models.InsightsResult
	InsightsError string
	InsightCharts []chartView
}

func newDashboardView() dashboardView {
	return dashboardView{
		Branches:    constants.BranchNames(),
		Internships: constants.InternshipNames(),
		Form:        defaultForm(),
	}
}

// renderCharts skips charts that fail to render so the rest of the page
// still shows.
func renderCharts(charts services.ChartService, specs []models.ChartSpec) []chartView {
	views := make([]chartView, 0, len(specs))
	for _, spec := range specs {
		html, err := charts.Render(spec)
		if err != nil {
			log.Printf("[WARN] %v", err)
			continue
		}
		views = append(views, chartView{
			ID:     spec.ID,
			Title:  spec.Title,
			Source: spec.Source,
			HTML:   html,
		})
	}
	return views
}
