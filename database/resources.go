package database

import "github.com/rpupo63/portfolio-site/models"

var AboutSections = Descriptor{
	Table:     "about_sections",
	OrderBy:   "display_order",
	Ascending: true,
	Columns:   []string{"section_key", "title", "content", "display_order"},
	Coerce: map[string]Coercer{
		"display_order": models.CoerceDisplayOrder,
	},
}

var Projects = Descriptor{
	Table:     "projects",
	OrderBy:   "created_at",
	Ascending: false,
	Columns:   []string{"title", "description", "video_url", "tech_stack", "status"},
	Coerce: map[string]Coercer{
		"tech_stack": models.CoerceTechStack,
		"video_url":  models.CoerceOptionalString,
	},
}

var Skills = Descriptor{
	Table:     "web_skills",
	OrderBy:   "created_at",
	Ascending: true,
	Columns:   []string{"skill", "logo"},
}

var Contacts = Descriptor{
	Table:   "contacts",
	OrderBy: "created_at",
	Columns: []string{"name", "email", "message"},
}

var Hero = Descriptor{
	Table:   "hero_content",
	Key:     "section",
	Columns: []string{"title", "subtitle", "description", "primary_button"},
}
