package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/turisouvenir/Care-Equity/internal/config"
	"github.com/turisouvenir/Care-Equity/internal/database"
	httpapi "github.com/turisouvenir/Care-Equity/internal/http"
	"github.com/turisouvenir/Care-Equity/internal/repository"
)

// import-hospitals 从 Excel 名册批量导入医院目录
// 用法: import-hospitals -file roster.xlsx
func main() {
	filePath := flag.String("file", "", "path to hospital roster .xlsx file")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: import-hospitals -file roster.xlsx")
		os.Exit(1)
	}

	fileBytes, err := os.ReadFile(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", *filePath, err)
		os.Exit(1)
	}

	hospitals, rowErrors, err := httpapi.ParseHospitalRoster(fileBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse roster: %v\n", err)
		os.Exit(1)
	}
	for _, rowErr := range rowErrors {
		fmt.Fprintf(os.Stderr, "skipped: %s\n", rowErr)
	}
	if len(hospitals) == 0 {
		fmt.Println("no hospitals to import")
		return
	}

	cfg := config.Load()
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := repository.NewPostgresHospitalsRepository(db)
	ctx := context.Background()

	imported := 0
	for i := range hospitals {
		if err := repo.UpsertHospital(ctx, &hospitals[i]); err != nil {
			fmt.Fprintf(os.Stderr, "failed: %s: %v\n", hospitals[i].HospitalID, err)
			continue
		}
		imported++
	}

	fmt.Printf("imported %d/%d hospitals\n", imported, len(hospitals))
}
