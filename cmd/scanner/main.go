package main

import (
	"context"
	"log"
	"time"

	"jobscan-automation/internal/artifact"
	"jobscan-automation/internal/config"
	"jobscan-automation/internal/diag"
	"jobscan-automation/internal/fetch"
	"jobscan-automation/internal/notify"
	"jobscan-automation/internal/pipeline"
	"jobscan-automation/internal/report"
	"jobscan-automation/internal/scraper"
	"jobscan-automation/internal/scraper/linkedin"
	"jobscan-automation/internal/scraper/static"
)

func main() {
	cfg := config.Load()

	run := scraper.NewRun(time.Now(), cfg.WindowDays)
	run.City = cfg.CityFilter
	run.TechPref = cfg.TechPref
	run.SectorPriority = cfg.SectorPriority

	log.Printf("[CFG] starting run city=%s window_days=%d sources=%v tech_pref=%v sector_priority=%v",
		cfg.CityFilter, cfg.WindowDays, cfg.Sources, cfg.TechPref, cfg.SectorPriority)

	sink := buildSink(cfg)
	folder := report.Folder(cfg.ReportPrefix, run.Now)
	debug := diag.NewScreenshotDebugger(sink, folder)

	client := fetch.NewClient()
	sources := []scraper.Source{
		static.NewSeek(client),
		static.NewIndeed(client),
		linkedin.New(cfg.LinkedInSearchURL, debug),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	res := pipeline.Run(ctx, sources, cfg.Sources, run)

	title := report.Title(cfg.CityFilter, run.Now)

	summaryBytes, err := report.Summary(res)
	if err != nil {
		log.Fatalf("[REPORT] summary render failed: %v", err)
	}
	csvBytes, err := report.CSV(res.Records)
	if err != nil {
		log.Fatalf("[REPORT] csv render failed: %v", err)
	}
	htmlBytes, err := report.HTML(res.Records, title)
	if err != nil {
		log.Fatalf("[REPORT] html render failed: %v", err)
	}

	// summary goes first so a run is debuggable even when the table
	// fails to persist
	mustPut(ctx, sink, folder+"/debug.json", "application/json", summaryBytes)
	mustPut(ctx, sink, folder+"/report.csv", "text/csv", csvBytes)
	mustPut(ctx, sink, folder+"/report.html", "text/html", htmlBytes)

	sendNotification(ctx, cfg, title, htmlBytes, csvBytes)

	log.Printf("[RUN] finished rows=%d", len(res.Records))
}

func buildSink(cfg *config.Config) artifact.Sink {
	if cfg.SupabaseURL != "" && cfg.SupabaseKey != "" {
		log.Printf("[CFG] using bucket sink bucket=%s", cfg.StorageBucket)
		return artifact.NewBucketSink(cfg.SupabaseURL, cfg.SupabaseKey, cfg.StorageBucket)
	}
	log.Printf("[CFG] using local sink dir=%s", cfg.ReportDir)
	return artifact.NewDirSink(cfg.ReportDir)
}

func mustPut(ctx context.Context, sink artifact.Sink, path, contentType string, data []byte) {
	if err := sink.Put(ctx, path, contentType, data); err != nil {
		log.Fatalf("[ARTIFACT] %s: %v", path, err)
	}
}

// sendNotification dispatches the report to the configured channel.
// Failures are logged only; artifacts are already persisted by now.
func sendNotification(ctx context.Context, cfg *config.Config, title string, htmlBytes, csvBytes []byte) {
	if cfg.NotifyProvider == "" || len(csvBytes) == 0 {
		return
	}

	notifier, err := buildNotifier(cfg)
	if err != nil {
		log.Printf("[NOTIFY] init failed: %v", err)
		return
	}
	if notifier == nil {
		return
	}

	att := &notify.Attachment{
		Filename: "report.csv",
		MIMEType: "text/csv",
		Data:     csvBytes,
	}
	if cfg.ReportPDF {
		pdfBytes, err := report.PDF(string(htmlBytes))
		if err != nil {
			log.Printf("[NOTIFY] pdf render failed, falling back to csv attachment: %v", err)
		} else {
			att = &notify.Attachment{Filename: "report.pdf", MIMEType: "application/pdf", Data: pdfBytes}
		}
	}

	if err := notifier.Send(ctx, cfg.EmailTo, title, string(htmlBytes), att); err != nil {
		log.Printf("[NOTIFY] send failed: %v", err)
		return
	}
	log.Printf("[NOTIFY] report sent via %s", cfg.NotifyProvider)
}

func buildNotifier(cfg *config.Config) (notify.Notifier, error) {
	switch cfg.NotifyProvider {
	case "smtp":
		if cfg.EmailTo == "" || cfg.SMTPHost == "" {
			log.Println("[NOTIFY] smtp selected but EMAIL_TO/SMTP_HOST missing, skipping")
			return nil, nil
		}
		port := cfg.SMTPPort
		if port == "" {
			port = "587"
		}
		return notify.NewSMTPMailer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPassword), nil
	case "telegram":
		if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
			log.Println("[NOTIFY] telegram selected but token/chat id missing, skipping")
			return nil, nil
		}
		return notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
	default:
		log.Printf("[NOTIFY] unknown provider %q, skipping", cfg.NotifyProvider)
		return nil, nil
	}
}
