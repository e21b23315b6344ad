package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"coach-tree-portal/internal/config"
	"coach-tree-portal/internal/models"
	"coach-tree-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// MemberData is one seeded member. Coach is the full name of another seeded or existing member;
// empty puts the member at the top of the tree.
type MemberData struct {
	FullName string `yaml:"full_name"`
	Email    string `yaml:"email"`
	Coach    string `yaml:"coach,omitempty"`
}

// MembersFile is the layout of scripts/data/*members*.yaml
type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

func main() {
	log.Println("🚀 Loading initial members from YAML files...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := service.NewMembersClient(cfg)
	if err != nil {
		log.Fatalf("Failed to create members client: %v", err)
	}

	memberValidator, err := service.NewMemberValidator(validator.New())
	if err != nil {
		log.Fatalf("Failed to create member validator: %v", err)
	}

	ctx := context.Background()

	existing, err := waitForMembersAPI(ctx, client, 60, time.Second)
	if err != nil {
		log.Fatalf("Members API not reachable: %v", err)
	}

	seeds, err := loadMembers("scripts/data")
	if err != nil {
		log.Fatalf("Failed to load members: %v", err)
	}

	created, skipped, err := seedMembers(ctx, client, memberValidator, cfg.MembersLimit, existing, seeds)
	if err != nil {
		log.Fatalf("Failed to seed members: %v", err)
	}

	log.Printf("✅ Members seeded: %d created, %d already present", created, skipped)
}

// waitForMembersAPI polls the members API until it answers, for docker-compose startups.
func waitForMembersAPI(ctx context.Context, client *service.MembersClient, maxAttempts int, delay time.Duration) ([]models.Member, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		members, err := client.FetchAll(ctx)
		if err == nil {
			return members, nil
		}
		lastErr = err
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Members API not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("members api not ready after %d attempts: %w", maxAttempts, lastErr)
}

func loadMembers(dataDir string) ([]MemberData, error) {
	var allMembers []MemberData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "members") {
			var file MembersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			allMembers = append(allMembers, file.Members...)
		}
		return nil
	})

	return allMembers, err
}

// seedMembers creates every seed whose email is not yet known, in file order, so coaches must be
// listed before the members they coach. Seeds go through the same capacity and field rules as
// the form.
func seedMembers(ctx context.Context, client *service.MembersClient, mv *service.MemberValidator, limit int, existing []models.Member, seeds []MemberData) (int, int, error) {
	members := existing
	created, skipped := 0, 0

	for _, seed := range seeds {
		if memberByEmail(members, seed.Email) != nil {
			skipped++
			continue
		}

		coachID := models.RootParentID
		if seed.Coach != "" {
			coach := memberByName(members, seed.Coach)
			if coach == nil {
				return created, skipped, fmt.Errorf("coach %q not found for member %s", seed.Coach, seed.FullName)
			}
			coachID = coach.ID
		}

		if err := service.CheckCapacity(len(members), limit); err != nil {
			return created, skipped, fmt.Errorf("cannot seed member %s: %w", seed.FullName, err)
		}

		fields := models.FormFields{Name: seed.FullName, Email: seed.Email, CoachSelect: strconv.Itoa(coachID)}
		if result := mv.ValidateFields(fields, members); !result.Valid() {
			return created, skipped, fmt.Errorf("member %s is invalid: %s", seed.FullName, strings.Join(result.Messages(), "; "))
		}

		payload := models.CreateMemberRequest{ParentID: coachID, FullName: seed.FullName, Email: seed.Email}
		if err := client.CreateOne(ctx, payload); err != nil {
			return created, skipped, fmt.Errorf("failed to create member %s: %w", seed.FullName, err)
		}
		created++

		// The API does not echo the new id, so re-read the list before resolving later coaches.
		refreshed, err := client.FetchAll(ctx)
		if err != nil {
			return created, skipped, fmt.Errorf("failed to refresh members: %w", err)
		}
		members = refreshed
	}

	return created, skipped, nil
}

func memberByEmail(members []models.Member, email string) *models.Member {
	for i := range members {
		if strings.EqualFold(members[i].Email, email) {
			return &members[i]
		}
	}
	return nil
}

func memberByName(members []models.Member, name string) *models.Member {
	for i := range members {
		if members[i].FullName == name {
			return &members[i]
		}
	}
	return nil
}
