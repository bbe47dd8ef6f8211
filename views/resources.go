package views

import (
	"strconv"

	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/models"
)

func aboutResource(table *database.Table[models.AboutSection]) Resource[models.AboutSection] {
	return Resource[models.AboutSection]{
		Title:    "About Sections",
		Singular: "section",
		BasePath: "/dashboard/about",
		Table:    table,
		Fields: []Field{
			{Name: "section_key", Label: "Section key", Input: "text", Placeholder: "intro"},
			{Name: "title", Label: "Title", Input: "text", Required: true},
			{Name: "content", Label: "Content (markdown)", Input: "textarea"},
			{Name: "display_order", Label: "Display order", Input: "number"},
		},
		Columns: []Column[models.AboutSection]{
			{Label: "Order", Value: func(a models.AboutSection) string { return optionalInt(a.DisplayOrder) }},
			{Label: "Key", Value: func(a models.AboutSection) string { return a.SectionKey }},
			{Label: "Title", Value: func(a models.AboutSection) string { return a.Title }},
			{Label: "Content", Value: func(a models.AboutSection) string { return preview(a.Content, 80) }},
		},
		ID: func(a models.AboutSection) string { return a.ID.String() },
		Values: func(a models.AboutSection) map[string]string {
			return map[string]string{
				"section_key":   a.SectionKey,
				"title":         a.Title,
				"content":       a.Content,
				"display_order": optionalInt(a.DisplayOrder),
			}
		},
		Build: func(v map[string]string) (*models.AboutSection, error) {
			order, err := models.CoerceDisplayOrder(v["display_order"])
			if err != nil {
				return nil, err
			}
			section := &models.AboutSection{
				SectionKey: v["section_key"],
				Title:      v["title"],
				Content:    v["content"],
			}
			if n, ok := order.(int); ok {
				section.DisplayOrder = &n
			}
			return section, nil
		},
	}
}

func projectResource(table *database.Table[models.Project]) Resource[models.Project] {
	return Resource[models.Project]{
		Title:    "Projects",
		Singular: "project",
		BasePath: "/dashboard/projects",
		Table:    table,
		Fields: []Field{
			{Name: "title", Label: "Title", Input: "text", Required: true},
			{Name: "description", Label: "Description", Input: "textarea"},
			{Name: "video_url", Label: "Video URL", Input: "url"},
			{Name: "tech_stack", Label: "Tech stack", Input: "text", Placeholder: "React, Node.js"},
			{Name: "status", Label: "Status", Input: "text", Placeholder: "In Progress"},
		},
		Columns: []Column[models.Project]{
			{Label: "Title", Value: func(p models.Project) string { return p.Title }},
			{Label: "Status", Value: func(p models.Project) string { return p.Status }},
			{Label: "Tech stack", Value: func(p models.Project) string { return p.TechStack.Joined() }},
			{Label: "Video", Value: func(p models.Project) string { return optionalString(p.VideoURL) }},
		},
		ID: func(p models.Project) string { return p.ID.String() },
		Values: func(p models.Project) map[string]string {
			return map[string]string{
				"title":       p.Title,
				"description": p.Description,
				"video_url":   optionalString(p.VideoURL),
				"tech_stack":  p.TechStack.Joined(),
				"status":      p.Status,
			}
		},
		Build: func(v map[string]string) (*models.Project, error) {
			p := &models.Project{
				Title:       v["title"],
				Description: v["description"],
				TechStack:   models.ParseTechStack(v["tech_stack"]),
				Status:      v["status"],
			}
			if url := v["video_url"]; url != "" {
				p.VideoURL = &url
			}
			return p, nil
		},
	}
}

func optionalInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func optionalString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
