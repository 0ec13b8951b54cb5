package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/richardawe/erp-world/db"
	"github.com/richardawe/erp-world/internal/config"
	"github.com/richardawe/erp-world/internal/model"
	"github.com/richardawe/erp-world/internal/repository"
)

// Default source set: vendor newsrooms plus the tech outlets that cover
// them. Re-running is safe; already-configured URLs are skipped.
var defaultSources = []model.Source{
	{URL: "https://news.sap.com/feed/", Vendor: "SAP", Type: model.SourceTypeRSS, Active: true},
	{URL: "https://www.oracle.com/news/rss.html", Vendor: "Oracle", Type: model.SourceTypeRSS, Active: true},
	{URL: "https://news.microsoft.com/feed/", Vendor: "Microsoft", Type: model.SourceTypeRSS, Active: true},
	{URL: "https://blog.workday.com/en-us/feeds/posts/default", Vendor: "Workday", Type: model.SourceTypeRSS, Active: true},
	{URL: "https://www.unit4.com/rss.xml", Vendor: "Unit4", Type: model.SourceTypeRSS, Active: true},
	{URL: "https://www.infor.com/news/rss.xml", Vendor: "Infor", Type: model.SourceTypeRSS, Active: true},
	{URL: "https://www.forterro.com/en/news", Vendor: "Forterro", Type: model.SourceTypeHTML, Active: true},
	{URL: "https://techcrunch.com/category/enterprise/feed/", Vendor: "TechCrunch", Type: model.SourceTypeRSS, Active: true},
	{URL: "https://venturebeat.com/category/enterprise/feed/", Vendor: "VentureBeat", Type: model.SourceTypeRSS, Active: true},
	{URL: "https://www.zdnet.com/topic/enterprise-software/rss.xml", Vendor: "ZDNet", Type: model.SourceTypeRSS, Active: true},
	{URL: "https://www.techtarget.com/searcherp/rss/Eye-on-ERP.xml", Vendor: "TechTarget", Type: model.SourceTypeRSS, Active: true},
	{URL: "https://www.computerweekly.com/rss/Enterprise-software.xml", Vendor: "ComputerWeekly", Type: model.SourceTypeRSS, Active: true},
}

func main() {

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer conn.Close()

	repo := repository.NewSourceRepository(conn)

	var inserted, skipped int
	for _, source := range defaultSources {
		src := source
		created, err := repo.Save(&src)
		if err != nil {
			slog.Error("error saving source", "vendor", src.Vendor, "url", src.URL, "error", err)
			continue
		}
		if created {
			inserted++
		} else {
			skipped++
		}
	}

	slog.Info("seed complete", "inserted", inserted, "skipped", skipped)
}
