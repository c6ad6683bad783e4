// Command lacosctl is the terminal front-end for the Laços Digitais
// platform: account/session management, article and quiz browsing, the
// local progress diary, and the partner institution dashboard.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	mockadapter "github.com/lacosdigitais/lacosctl/internal/adapter/driven/mock"
	restadapter "github.com/lacosdigitais/lacosctl/internal/adapter/driven/rest"
	sqliteadapter "github.com/lacosdigitais/lacosctl/internal/adapter/driven/sqlite"
	"github.com/lacosdigitais/lacosctl/internal/application"
	"github.com/lacosdigitais/lacosctl/internal/config"
	"github.com/lacosdigitais/lacosctl/internal/content"
	"github.com/lacosdigitais/lacosctl/internal/domain/model"
	"github.com/lacosdigitais/lacosctl/internal/domain/port/driven"
	"github.com/lacosdigitais/lacosctl/internal/validate"
)

const usage = `usage: lacosctl <command> [flags]

commands:
  register     create an account and sign in
  login        sign in to an existing account
  logout       clear the local session
  whoami       show the current session
  verify       check the session token against the server
  articles     list published articles
  article      show one article
  quizzes      list self-assessment questionnaires
  diary        manage the local progress diary (add|list|delete)
  institution  partner institution tools (login|stats|articles|submit|delete)
`

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing command")
	}

	// 1. Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode) and migrate.
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}

	// 4. Wire persistence adapters.
	kv := sqliteadapter.NewKVRepo(db, cfg.SecretKey)
	articleCache := sqliteadapter.NewArticleCacheRepo(db)
	diaryStore := sqliteadapter.NewDiaryRepo(db)

	installID, err := application.EnsureInstallID(ctx, kv)
	if err != nil {
		return err
	}

	// 5. Wire the API adapter: the real platform, or the in-process
	// offline backend when explicitly requested.
	var (
		authAPI        driven.AuthAPI
		contentAPI     driven.ContentAPI
		institutionAPI driven.InstitutionAPI
	)
	if cfg.Offline {
		slog.Info("offline mode active, using in-process fixture backend")
		offline := mockadapter.NewAPI()
		authAPI, contentAPI, institutionAPI = offline, offline, offline
	} else {
		client := restadapter.NewClient(cfg.APIBaseURL, cfg.Timeout, kv, installID, slog.Default())
		authAPI, contentAPI, institutionAPI = client, client, client
	}

	// 6. Wire services; restore any persisted session before dispatch.
	sessions := application.NewSessionService(authAPI, kv, slog.Default())
	sessions.CheckAndRestore(ctx)

	contentSvc := application.NewContentService(contentAPI, articleCache, slog.Default())
	diarySvc := application.NewDiaryService(diaryStore)
	institutionSvc := application.NewInstitutionService(institutionAPI)

	// 7. Dispatch.
	switch args[0] {
	case "register":
		return cmdRegister(ctx, sessions, args[1:])
	case "login":
		return cmdLogin(ctx, sessions, args[1:])
	case "logout":
		sessions.Logout(ctx)
		fmt.Println("signed out")
		return nil
	case "whoami":
		return cmdWhoami(sessions)
	case "verify":
		return cmdVerify(ctx, authAPI)
	case "articles":
		return cmdArticles(ctx, contentSvc, args[1:])
	case "article":
		return cmdArticle(ctx, contentSvc, args[1:])
	case "quizzes":
		return cmdQuizzes(ctx, contentSvc)
	case "diary":
		return cmdDiary(ctx, sessions, diarySvc, args[1:])
	case "institution":
		return cmdInstitution(ctx, sessions, institutionSvc, args[1:])
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func cmdRegister(ctx context.Context, sessions *application.SessionService, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	confirm := fs.String("confirm", "", "password confirmation")
	fs.Parse(args)

	if err := validate.Credentials(*username, *password); err != nil {
		return err
	}
	if *confirm != "" {
		if err := validate.PasswordMatch(*password, *confirm); err != nil {
			return err
		}
	}

	principal, err := sessions.Register(ctx, *username, *password)
	if err != nil {
		return err
	}
	fmt.Printf("welcome, %s\n", principal.DisplayName)
	return nil
}

func cmdLogin(ctx context.Context, sessions *application.SessionService, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	fs.Parse(args)

	if err := validate.Credentials(*username, *password); err != nil {
		return err
	}

	principal, err := sessions.Login(ctx, *username, *password)
	if err != nil {
		return err
	}
	fmt.Printf("signed in as %s\n", principal.DisplayName)
	return nil
}

func cmdWhoami(sessions *application.SessionService) error {
	principal, ok := sessions.Current()
	if !ok {
		fmt.Println("not signed in")
		return nil
	}

	state := "verified"
	if !sessions.Verified() {
		state = "verification pending"
	}
	fmt.Printf("%s (%s, %s)\n", principal.DisplayName, principal.Kind, state)
	return nil
}

func cmdVerify(ctx context.Context, api driven.AuthAPI) error {
	if err := api.Verify(ctx); err != nil {
		fmt.Println("session invalid:", err)
		return nil
	}
	fmt.Println("session valid")
	return nil
}

func cmdArticles(ctx context.Context, svc *application.ContentService, args []string) error {
	fs := flag.NewFlagSet("articles", flag.ExitOnError)
	status := fs.String("status", "", "filter by status (pending|approved|rejected)")
	fs.Parse(args)

	articles, err := svc.Articles(ctx, model.ArticleStatus(*status))
	if err != nil {
		return err
	}

	for _, a := range articles {
		fmt.Printf("#%d [%s] %s — %s (%d views)\n", a.ID, a.Status, a.Title, a.Authors, a.Views)
	}
	if len(articles) == 0 {
		fmt.Println("no articles")
	}
	return nil
}

func cmdArticle(ctx context.Context, svc *application.ContentService, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: lacosctl article <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid article id %q", args[0])
	}

	a, err := svc.Article(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s · %s · %d views\n\n%s\n", a.Title, a.Authors, a.Category, a.Views, content.RenderText(a.Summary))
	if a.URL != "" {
		fmt.Printf("\nfull text: %s\n", a.URL)
	}
	return nil
}

func cmdQuizzes(ctx context.Context, svc *application.ContentService) error {
	quizzes, err := svc.Quizzes(ctx)
	if err != nil {
		return err
	}

	for _, q := range quizzes {
		fmt.Printf("#%d %s — %s (%d questions)\n", q.ID, q.Title, q.Description, len(q.Questions))
	}
	if len(quizzes) == 0 {
		fmt.Println("no quizzes")
	}
	return nil
}

func cmdDiary(ctx context.Context, sessions *application.SessionService, svc *application.DiaryService, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: lacosctl diary <add|list|delete> [flags]")
	}

	principal, ok := sessions.Current()
	if !ok {
		return errors.New("sign in to use the diary")
	}

	switch args[0] {
	case "add":
		fs := flag.NewFlagSet("diary add", flag.ExitOnError)
		mood := fs.Int("mood", 0, "mood from 1 (worst) to 5 (best)")
		minutes := fs.Int("minutes", 0, "screen time in minutes")
		note := fs.String("note", "", "free-form note")
		fs.Parse(args[1:])

		entry, err := svc.AddEntry(ctx, model.DiaryEntry{
			Username:          principal.DisplayName,
			Mood:              *mood,
			ScreenTimeMinutes: *minutes,
			Note:              *note,
		})
		if err != nil {
			return err
		}
		fmt.Printf("entry #%d recorded\n", entry.ID)
		return nil

	case "list":
		entries, err := svc.Entries(ctx, principal.DisplayName)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("#%d %s mood=%d screen=%dm %s\n", e.ID, e.CreatedAt.Format("2006-01-02"), e.Mood, e.ScreenTimeMinutes, e.Note)
		}
		if len(entries) == 0 {
			fmt.Println("no diary entries")
		}
		return nil

	case "delete":
		if len(args) < 2 {
			return errors.New("usage: lacosctl diary delete <id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry id %q", args[1])
		}
		if err := svc.DeleteEntry(ctx, id); err != nil {
			return err
		}
		fmt.Println("entry deleted")
		return nil

	default:
		return fmt.Errorf("unknown diary subcommand %q", args[0])
	}
}

func cmdInstitution(ctx context.Context, sessions *application.SessionService, svc *application.InstitutionService, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: lacosctl institution <login|stats|articles|submit|delete> [flags]")
	}

	switch args[0] {
	case "login":
		fs := flag.NewFlagSet("institution login", flag.ExitOnError)
		registration := fs.String("r", "", "registration number")
		password := fs.String("p", "", "password")
		fs.Parse(args[1:])

		if err := validate.Required("registration", *registration); err != nil {
			return err
		}
		if err := validate.Required("password", *password); err != nil {
			return err
		}

		principal, err := sessions.InstitutionLogin(ctx, *registration, *password)
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s\n", principal.DisplayName)
		return nil

	case "stats":
		stats, err := svc.Stats(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("articles: %d  views: %d  avg: %d\n",
			stats.Overview.TotalArticles, stats.Overview.TotalViews, stats.Overview.AvgViewsPerArticle)
		for _, cs := range stats.ByCategory {
			fmt.Printf("  %-12s %d articles, %d views\n", cs.Category, cs.Count, cs.Views)
		}
		for _, mv := range stats.MonthlyViews {
			fmt.Printf("  %s: %d views\n", mv.Month, mv.Views)
		}
		return nil

	case "articles":
		fs := flag.NewFlagSet("institution articles", flag.ExitOnError)
		status := fs.String("status", "", "filter by status")
		fs.Parse(args[1:])

		articles, err := svc.OwnArticles(ctx, model.ArticleStatus(*status))
		if err != nil {
			return err
		}
		for _, a := range articles {
			line := fmt.Sprintf("#%d [%s] %s (%d views)", a.ID, a.Status, a.Title, a.Views)
			if a.RejectionReason != "" {
				line += " — " + a.RejectionReason
			}
			fmt.Println(line)
		}
		return nil

	case "submit":
		fs := flag.NewFlagSet("institution submit", flag.ExitOnError)
		title := fs.String("title", "", "article title")
		authors := fs.String("authors", "", "comma-separated authors")
		summary := fs.String("summary", "", "markdown summary")
		category := fs.String("category", "", "pesquisa|prevencao|tratamento")
		articleURL := fs.String("url", "", "link to the full text")
		keywords := fs.String("keywords", "", "comma-separated keywords")
		fs.Parse(args[1:])

		article, err := svc.Submit(ctx, model.ArticleDraft{
			Title:    *title,
			Authors:  *authors,
			Summary:  *summary,
			Category: model.ArticleCategory(*category),
			URL:      *articleURL,
			Keywords: *keywords,
		})
		if err != nil {
			return err
		}
		fmt.Printf("article #%d submitted for moderation\n", article.ID)
		return nil

	case "delete":
		if len(args) < 2 {
			return errors.New("usage: lacosctl institution delete <id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid article id %q", args[1])
		}
		if err := svc.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Println("article deleted")
		return nil

	default:
		return fmt.Errorf("unknown institution subcommand %q", args[0])
	}
}
