package commands

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/workreport/core/internal/adapters/repository"
	"github.com/workreport/core/internal/domain/entities"
	"github.com/workreport/core/internal/domain/stats"
	"github.com/workreport/core/internal/infrastructure/config"
	"github.com/workreport/core/internal/infrastructure/database"
)

// seedTasks is a three-level project > sub-project > task hierarchy spread
// over the current week.
var seedTasks = map[string]map[string][]string{
	"Backend Development": {
		"API Implementation": {
			"Create User Authentication Endpoints",
			"Implement Data Validation",
			"Set up Database Migrations",
		},
		"Database Optimization": {
			"Index Critical Columns",
			"Optimize Query Performance",
			"Implement Caching Strategy",
		},
	},
	"Frontend Development": {
		"UI Components": {
			"Design Dashboard Layout",
			"Create Reusable Form Components",
			"Implement Data Tables",
		},
		"User Experience": {
			"Add Loading States",
			"Implement Error Handling",
			"Optimize Page Load Time",
		},
	},
	"Project Management": {
		"Documentation": {
			"Update API Documentation",
			"Create User Manual",
			"Document Code Standards",
		},
		"Team Coordination": {
			"Weekly Team Meetings",
			"Code Review Sessions",
			"Sprint Planning",
		},
	},
}

var seedDifficulties = []string{
	"Integration with legacy systems required additional workarounds",
	"Complex data relationships needed careful optimization",
	"Cross-browser compatibility issues needed extensive testing",
	"Performance bottlenecks required thorough investigation",
	"Security vulnerabilities needed immediate attention",
	"Team coordination across different time zones was challenging",
	"Technical debt needed to be addressed while maintaining feature development",
	"Resource constraints required creative solutions",
}

var seedSolutions = []string{
	"Implemented adapter pattern to handle legacy system integration",
	"Created efficient database indexes and optimized queries",
	"Developed comprehensive test suite for cross-browser testing",
	"Used profiling tools to identify and fix performance issues",
	"Conducted security audit and implemented necessary patches",
	"Set up automated workflows and communication channels",
	"Established technical debt tracking and resolution process",
	"Prioritized tasks and optimized resource allocation",
}

var seedNotes = []string{
	"Regular monitoring needed to ensure continued performance",
	"Documentation updated to reflect new changes",
	"Additional training may be required for team members",
	"Consider implementing automated testing",
	"Future scalability should be considered",
	"Positive feedback received from stakeholders",
	"Regular maintenance schedule established",
	"Knowledge transfer sessions completed",
}

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample tasks",
		Long:  "Create a sample project hierarchy with tasks spread over the current week",
		Run: func(cmd *cobra.Command, args []string) {
			runSeed()
		},
	}
}

func runSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	taskRepo := repository.NewTaskRepository(db.DB)
	ctx := context.Background()
	weekStart, _ := stats.WeekBounds(time.Now())

	created := 0
	for project, subProjects := range seedTasks {
		projectDesc := fmt.Sprintf("Main project: %s", project)
		projectTask := seedTask(project, projectDesc, weekStart, nil)
		if err := taskRepo.Create(ctx, projectTask); err != nil {
			log.Fatalf("Failed to seed task %q: %v", project, err)
		}
		created++

		for subProject, tasks := range subProjects {
			subDesc := fmt.Sprintf("Sub-project: %s under %s", subProject, project)
			subTask := seedTask(subProject, subDesc, weekStart, &projectTask.ID)
			if err := taskRepo.Create(ctx, subTask); err != nil {
				log.Fatalf("Failed to seed task %q: %v", subProject, err)
			}
			created++

			for _, title := range tasks {
				desc := fmt.Sprintf("Task: %s under %s", title, subProject)
				task := seedTask(title, desc, weekStart, &subTask.ID)
				if err := taskRepo.Create(ctx, task); err != nil {
					log.Fatalf("Failed to seed task %q: %v", title, err)
				}
				created++
			}
		}
	}

	fmt.Printf("Seeded %d tasks\n", created)
}

func seedTask(title, description string, weekStart time.Time, parentID *int64) *entities.Task {
	statuses := []entities.TaskStatus{
		entities.TaskStatusNotStarted,
		entities.TaskStatusInProgress,
		entities.TaskStatusCompleted,
	}
	priorities := []entities.Priority{
		entities.PriorityLow,
		entities.PriorityMedium,
		entities.PriorityHigh,
	}

	difficulties := seedDifficulties[rand.Intn(len(seedDifficulties))]
	solutions := seedSolutions[rand.Intn(len(seedSolutions))]
	notes := seedNotes[rand.Intn(len(seedNotes))]

	return &entities.Task{
		ParentTaskID: parentID,
		Title:        title,
		Description:  &description,
		Status:       statuses[rand.Intn(len(statuses))],
		Priority:     priorities[rand.Intn(len(priorities))],
		Progress:     rand.Intn(101),
		DueDate:      weekStart.AddDate(0, 0, rand.Intn(7)),
		Difficulties: &difficulties,
		Solutions:    &solutions,
		Notes:        &notes,
	}
}
