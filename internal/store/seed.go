package store

import (
	"time"

	"taskboard/internal/model"
)

// seedData builds the fixed demo dataset: 5 projects, 17 tasks, 5 comments
// and 10 activity entries, with due dates and timestamps positioned relative
// to now so the board always shows a realistic mix of overdue, due-today and
// upcoming work.
func seedData(now time.Time) ([]model.Project, []model.Task, []model.Comment, []model.ActivityLog) {
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }
	date := func(offset int) string { return day(offset).Format("2006-01-02") }

	projects := []model.Project{
		{ID: "p1", Name: "Website Redesign", Description: "Complete overhaul of the company website with new branding, improved UX, and mobile-first design.", Status: model.ProjectActive, Priority: model.PriorityHigh, DueDate: date(14), CreatedAt: day(-30), UpdatedAt: day(-1)},
		{ID: "p2", Name: "Mobile App v2", Description: "Second version of the mobile application with offline support, push notifications, and dark mode.", Status: model.ProjectActive, Priority: model.PriorityHigh, DueDate: date(28), CreatedAt: day(-45), UpdatedAt: day(-2)},
		{ID: "p3", Name: "API Integration", Description: "Integrate third-party payment processor and analytics SDK into the platform.", Status: model.ProjectOnHold, Priority: model.PriorityMedium, DueDate: date(7), CreatedAt: day(-20), UpdatedAt: day(-5)},
		{ID: "p4", Name: "Documentation Hub", Description: "Build a comprehensive documentation site with versioning and search.", Status: model.ProjectCompleted, Priority: model.PriorityLow, DueDate: date(-3), CreatedAt: day(-60), UpdatedAt: day(-3)},
		{ID: "p5", Name: "Q1 Marketing Campaign", Description: "Launch marketing campaign including landing pages, email sequences, and ad creatives.", Status: model.ProjectActive, Priority: model.PriorityMedium, DueDate: date(21), CreatedAt: day(-15), UpdatedAt: now},
	}

	tasks := []model.Task{
		{ID: "t1", ProjectID: "p1", Title: "Design new homepage wireframes", Description: "Create wireframes for the new homepage layout with hero section and feature highlights.", Status: model.TaskDone, Priority: model.PriorityHigh, Label: model.LabelUI, DueDate: date(-5), CreatedAt: day(-28), UpdatedAt: day(-5)},
		{ID: "t2", ProjectID: "p1", Title: "Implement responsive navigation", Description: "Build the main navigation component with mobile hamburger menu and dropdown support.", Status: model.TaskDone, Priority: model.PriorityHigh, Label: model.LabelFrontend, DueDate: date(-2), CreatedAt: day(-20), UpdatedAt: day(-2)},
		{ID: "t3", ProjectID: "p1", Title: "Build hero section", Description: "Implement the animated hero section with CTA buttons and background imagery.", Status: model.TaskInProgress, Priority: model.PriorityHigh, Label: model.LabelFrontend, DueDate: date(2), CreatedAt: day(-10), UpdatedAt: now},
		{ID: "t4", ProjectID: "p1", Title: "Create testimonials component", Description: "Design and build the customer testimonials carousel section.", Status: model.TaskTodo, Priority: model.PriorityMedium, Label: model.LabelUI, DueDate: date(5), CreatedAt: day(-7), UpdatedAt: day(-7)},
		{ID: "t5", ProjectID: "p1", Title: "Fix footer alignment issue", Description: "Footer links are misaligned on tablet devices. Needs CSS grid adjustment.", Status: model.TaskReview, Priority: model.PriorityLow, Label: model.LabelBug, DueDate: date(0), CreatedAt: day(-3), UpdatedAt: now},
		{ID: "t6", ProjectID: "p2", Title: "Implement offline data sync", Description: "Add IndexedDB caching layer for offline-first architecture.", Status: model.TaskInProgress, Priority: model.PriorityHigh, Label: model.LabelBackend, DueDate: date(5), CreatedAt: day(-14), UpdatedAt: day(-1)},
		{ID: "t7", ProjectID: "p2", Title: "Push notification service", Description: "Set up Firebase Cloud Messaging for push notifications.", Status: model.TaskTodo, Priority: model.PriorityHigh, Label: model.LabelBackend, DueDate: date(10), CreatedAt: day(-10), UpdatedAt: day(-10)},
		{ID: "t8", ProjectID: "p2", Title: "Dark mode theming", Description: "Implement dark mode with system preference detection and manual toggle.", Status: model.TaskTodo, Priority: model.PriorityMedium, Label: model.LabelFrontend, DueDate: date(12), CreatedAt: day(-8), UpdatedAt: day(-8)},
		{ID: "t9", ProjectID: "p2", Title: "Performance audit", Description: "Run Lighthouse audit and optimize critical rendering path.", Status: model.TaskReview, Priority: model.PriorityMedium, Label: model.LabelFrontend, DueDate: date(1), CreatedAt: day(-5), UpdatedAt: day(-1)},
		{ID: "t10", ProjectID: "p3", Title: "Stripe webhook handler", Description: "Implement webhook endpoints for payment events.", Status: model.TaskInProgress, Priority: model.PriorityHigh, Label: model.LabelBackend, DueDate: date(3), CreatedAt: day(-12), UpdatedAt: day(-2)},
		{ID: "t11", ProjectID: "p3", Title: "Analytics SDK setup", Description: "Integrate Mixpanel SDK with event tracking utilities.", Status: model.TaskTodo, Priority: model.PriorityMedium, Label: model.LabelBackend, DueDate: date(6), CreatedAt: day(-8), UpdatedAt: day(-8)},
		{ID: "t12", ProjectID: "p4", Title: "Write API reference docs", Description: "Document all REST API endpoints with examples.", Status: model.TaskDone, Priority: model.PriorityHigh, Label: model.LabelDocs, DueDate: date(-7), CreatedAt: day(-30), UpdatedAt: day(-7)},
		{ID: "t13", ProjectID: "p4", Title: "Setup search functionality", Description: "Implement full-text search across documentation pages.", Status: model.TaskDone, Priority: model.PriorityMedium, Label: model.LabelFeature, DueDate: date(-5), CreatedAt: day(-25), UpdatedAt: day(-5)},
		{ID: "t14", ProjectID: "p5", Title: "Design landing page mockups", Description: "Create 3 landing page variations for A/B testing.", Status: model.TaskInProgress, Priority: model.PriorityHigh, Label: model.LabelUI, DueDate: date(3), CreatedAt: day(-10), UpdatedAt: now},
		{ID: "t15", ProjectID: "p5", Title: "Write email sequence copy", Description: "Draft 5-email nurture sequence for campaign leads.", Status: model.TaskTodo, Priority: model.PriorityMedium, Label: model.LabelDocs, DueDate: date(7), CreatedAt: day(-8), UpdatedAt: day(-8)},
		{ID: "t16", ProjectID: "p5", Title: "Setup tracking pixels", Description: "Configure Facebook Pixel and Google Tag Manager for conversion tracking.", Status: model.TaskTodo, Priority: model.PriorityLow, Label: model.LabelBackend, DueDate: date(14), CreatedAt: day(-5), UpdatedAt: day(-5)},
		{ID: "t17", ProjectID: "p1", Title: "Update color palette", Description: "Refresh brand colors based on new style guide from design team.", Status: model.TaskTodo, Priority: model.PriorityHigh, Label: model.LabelUI, DueDate: date(-2), CreatedAt: day(-10), UpdatedAt: day(-2)},
	}

	comments := []model.Comment{
		{ID: "c1", TaskID: "t3", Content: "Looking great! Can we add a subtle parallax effect to the background?", CreatedAt: day(-1)},
		{ID: "c2", TaskID: "t3", Content: "Good idea. I'll prototype it and share a preview.", CreatedAt: now},
		{ID: "c3", TaskID: "t6", Content: "Consider using Dexie.js for the IndexedDB abstraction layer.", CreatedAt: day(-3)},
		{ID: "c4", TaskID: "t10", Content: "Webhook signature verification is implemented. Ready for review.", CreatedAt: day(-1)},
		{ID: "c5", TaskID: "t14", Content: "First mockup is ready. Check Figma for details.", CreatedAt: now},
	}

	activities := []model.ActivityLog{
		{ID: "a1", EntityType: model.EntityTask, EntityID: "t1", Action: model.ActionCompleted, Description: `Marked "Design new homepage wireframes" as done`, CreatedAt: day(-5)},
		{ID: "a2", EntityType: model.EntityTask, EntityID: "t2", Action: model.ActionCompleted, Description: `Marked "Implement responsive navigation" as done`, CreatedAt: day(-2)},
		{ID: "a3", EntityType: model.EntityProject, EntityID: "p4", Action: model.ActionCompleted, Description: `Project "Documentation Hub" marked as completed`, CreatedAt: day(-3)},
		{ID: "a4", EntityType: model.EntityTask, EntityID: "t3", Action: model.ActionStatusChanged, Description: `Moved "Build hero section" to In Progress`, CreatedAt: day(-1)},
		{ID: "a5", EntityType: model.EntityTask, EntityID: "t14", Action: model.ActionCreated, Description: `Created task "Design landing page mockups"`, CreatedAt: day(-10)},
		{ID: "a6", EntityType: model.EntityComment, EntityID: "c1", Action: model.ActionCreated, Description: `New comment on "Build hero section"`, CreatedAt: day(-1)},
		{ID: "a7", EntityType: model.EntityTask, EntityID: "t5", Action: model.ActionStatusChanged, Description: `Moved "Fix footer alignment issue" to Review`, CreatedAt: now},
		{ID: "a8", EntityType: model.EntityProject, EntityID: "p5", Action: model.ActionCreated, Description: `Created project "Q1 Marketing Campaign"`, CreatedAt: day(-15)},
		{ID: "a9", EntityType: model.EntityTask, EntityID: "t10", Action: model.ActionStatusChanged, Description: `Moved "Stripe webhook handler" to In Progress`, CreatedAt: day(-2)},
		{ID: "a10", EntityType: model.EntityTask, EntityID: "t17", Action: model.ActionCreated, Description: `Created task "Update color palette"`, CreatedAt: day(-10)},
	}

	return projects, tasks, comments, activities
}
