package app

import (
	"context"
	"fmt"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/domain"
	"github.com/rovillalobos-slalom/capabilities/pkg/cryptox"
)

// defaultSkillLevels is the progression every capability tracks.
var defaultSkillLevels = []string{"Emerging", "Proficient", "Advanced", "Expert"}

// seedCapabilities is the catalog installed on first start.
var seedCapabilities = []domain.Capability{
	{
		Name:              "Cloud Architecture",
		Description:       "Design and implement scalable cloud solutions using AWS, Azure, and GCP",
		PracticeArea:      "Technology",
		Certifications:    []string{"AWS Solutions Architect", "Azure Architect Expert"},
		IndustryVerticals: []string{"Healthcare", "Financial Services", "Retail"},
		Capacity:          40,
	},
	{
		Name:              "Data Analytics",
		Description:       "Advanced data analysis, visualization, and machine learning solutions",
		PracticeArea:      "Technology",
		Certifications:    []string{"Tableau Desktop Specialist", "Power BI Expert", "Google Analytics"},
		IndustryVerticals: []string{"Retail", "Healthcare", "Manufacturing"},
		Capacity:          35,
	},
	{
		Name:              "DevOps Engineering",
		Description:       "CI/CD pipeline design, infrastructure automation, and containerization",
		PracticeArea:      "Technology",
		Certifications:    []string{"Docker Certified Associate", "Kubernetes Admin", "Jenkins Certified"},
		IndustryVerticals: []string{"Technology", "Financial Services"},
		Capacity:          30,
	},
	{
		Name:              "Digital Strategy",
		Description:       "Digital transformation planning and strategic technology roadmaps",
		PracticeArea:      "Strategy",
		Certifications:    []string{"Digital Transformation Certificate", "Agile Certified Practitioner"},
		IndustryVerticals: []string{"Healthcare", "Financial Services", "Government"},
		Capacity:          25,
	},
	{
		Name:              "Change Management",
		Description:       "Organizational change leadership and adoption strategies",
		PracticeArea:      "Operations",
		Certifications:    []string{"Prosci Certified", "Lean Six Sigma Black Belt"},
		IndustryVerticals: []string{"Healthcare", "Manufacturing", "Government"},
		Capacity:          20,
	},
	{
		Name:              "UX/UI Design",
		Description:       "User experience design and digital product innovation",
		PracticeArea:      "Technology",
		Certifications:    []string{"Adobe Certified Expert", "Google UX Design Certificate"},
		IndustryVerticals: []string{"Retail", "Healthcare", "Technology"},
		Capacity:          30,
	},
	{
		Name:              "Cybersecurity",
		Description:       "Information security strategy, risk assessment, and compliance",
		PracticeArea:      "Technology",
		Certifications:    []string{"CISSP", "CISM", "CompTIA Security+"},
		IndustryVerticals: []string{"Financial Services", "Healthcare", "Government"},
		Capacity:          25,
	},
	{
		Name:              "Business Intelligence",
		Description:       "Enterprise reporting, data warehousing, and business analytics",
		PracticeArea:      "Technology",
		Certifications:    []string{"Microsoft BI Certification", "Qlik Sense Certified"},
		IndustryVerticals: []string{"Retail", "Manufacturing", "Financial Services"},
		Capacity:          35,
	},
	{
		Name:              "Agile Coaching",
		Description:       "Agile transformation and team coaching for scaled delivery",
		PracticeArea:      "Operations",
		Certifications:    []string{"Certified Scrum Master", "SAFe Agilist", "ICAgile Certified"},
		IndustryVerticals: []string{"Technology", "Financial Services", "Healthcare"},
		Capacity:          20,
	},
}

// seed installs the starter catalog and, when configured, the first admin
// account. Both only run against empty tables so restarts are no-ops.
func (app *Application) seed(ctx context.Context) error {
	if err := app.seedCatalog(ctx); err != nil {
		return err
	}
	return app.seedAdmin(ctx)
}

func (app *Application) seedCatalog(ctx context.Context) error {
	empty, err := app.db.Capabilities().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	for _, cap := range seedCapabilities {
		cap.SkillLevels = defaultSkillLevels
		if _, err := app.capabilityService.Create(ctx, cap); err != nil {
			return fmt.Errorf("failed to seed capability %q: %w", cap.Name, err)
		}
	}

	app.logger.Info("seeded capability catalog", "capabilities", len(seedCapabilities))
	return nil
}

func (app *Application) seedAdmin(ctx context.Context) error {
	if app.cfg.AdminEmail == "" {
		return nil
	}

	empty, err := app.db.Users().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	password := app.cfg.AdminPassword
	generated := false
	if password == "" {
		password, err = cryptox.GeneratePassword()
		if err != nil {
			return err
		}
		generated = true
	}

	if _, err := app.authService.CreateUser(ctx, app.cfg.AdminEmail, password, domain.RoleAdmin); err != nil {
		return err
	}

	if generated {
		// Shown once; there is no other way to recover it.
		app.logger.Info("seeded admin account with generated password",
			"email", app.cfg.AdminEmail,
			"password", password,
		)
	} else {
		app.logger.Info("seeded admin account", "email", app.cfg.AdminEmail)
	}
	return nil
}
