package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"churchcms/internal/app"
	"churchcms/internal/config"
	"churchcms/internal/domain/activity"
	"churchcms/internal/domain/article"
	"churchcms/internal/domain/author"
	"churchcms/internal/domain/coordinator"
	"churchcms/internal/domain/message"
	"churchcms/internal/domain/pastor"
	"churchcms/internal/domain/pastorcorner"
	"churchcms/internal/pkg/logger"
)

func main() {
	reset := flag.Bool("reset", false, "delete existing content before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("startup failed", "error", err)
	}
	defer a.Close()

	if *reset {
		log.Info("cleaning old data")
		// children first; blobs of seeded rows are external URLs
		for _, table := range []string{
			"audio_messages", "categories", "pastor_corner_posts", "pastors",
			"messages", "coordinators", "memories", "activities", "articles", "authors",
		} {
			if err := a.DB.Exec("DELETE FROM " + table).Error; err != nil {
				log.Fatal("cleanup failed", "table", table, "error", err)
			}
		}
	}

	if err := seed(ctx, a.Services); err != nil {
		log.Fatal("seed failed", "error", err)
	}
	log.Info("seed completed")
}

func seed(ctx context.Context, s app.Services) error {
	if _, err := s.Categories.EnsureDefaults(ctx); err != nil {
		return fmt.Errorf("categories: %w", err)
	}

	au, err := s.Authors.Create(ctx, author.CreateAuthorRequest{
		FirstName:    "Grace",
		LastName:     "Adeyemi",
		ProfileImage: "https://picsum.photos/seed/grace/200",
	})
	if err != nil {
		return fmt.Errorf("author: %w", err)
	}
	for i, title := range []string{"Walking in Faith", "The Gift of Hospitality", "Rest for the Weary"} {
		_, err := s.Articles.Create(ctx, article.CreateArticleRequest{
			Title:    title,
			AuthorID: au.ID,
			Text:     fmt.Sprintf("<p>%s. A reflection for the week of our church family.</p>", title),
			Date:     time.Now().AddDate(0, 0, -7*i).Format("2006-01-02"),
			ReadTime: "3 min",
		}, nil)
		if err != nil {
			return fmt.Errorf("article %q: %w", title, err)
		}
	}

	for i, name := range []string{"Harvest Thanksgiving", "Youth Camp", "Community Outreach"} {
		_, err := s.Activities.Create(ctx, activity.CreateActivityRequest{
			Name:        name,
			Date:        time.Now().AddDate(0, -i, 0).Format("2006-01-02"),
			Description: name + " with the whole congregation.",
		})
		if err != nil {
			return fmt.Errorf("activity %q: %w", name, err)
		}
	}

	coord, err := s.Coordinators.Create(ctx, coordinator.CreateCoordinatorRequest{
		Name:        "Samuel Okoro",
		Occupation:  "Civil engineer",
		PhoneNumber: "+1 555 0142",
		About:       "Coordinates the men's fellowship and Saturday outreach.",
		IsFeatured:  true,
	}, nil)
	if err != nil {
		return fmt.Errorf("coordinator: %w", err)
	}
	if _, err := s.Messages.Create(ctx, message.CreateMessageRequest{
		Title:         "Welcome to the fellowship",
		Content:       "We meet every second Saturday. Everyone is welcome to join us for breakfast and prayer.",
		CoordinatorID: coord.ID,
	}); err != nil {
		return fmt.Errorf("message: %w", err)
	}

	p, err := s.Pastors.Create(ctx, pastor.CreatePastorRequest{
		Name:           "Daniel Mensah",
		Title:          "Senior Pastor",
		WelcomeMessage: "Welcome home. We are glad you are here.",
		Image:          "https://picsum.photos/seed/pastor/400",
	})
	if err != nil {
		return fmt.Errorf("pastor: %w", err)
	}
	if _, err := s.PastorCorner.Create(ctx, pastorcorner.CreatePostRequest{
		Title:    "A word for this season",
		Content:  "Seasons change but His faithfulness does not. Take heart this week.",
		PastorID: p.ID,
	}); err != nil {
		return fmt.Errorf("pastor corner: %w", err)
	}
	return nil
}
