package main

import (
	"flag"

	"github.com/bumbaRasch/medical-practice-site-sub000/configs"
	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configsdatabase"
	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "run database migrations")
	seedFlag := flag.Bool("seed", false, "run database seeders")
	flag.Parse()

	configs.Load()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Running database initialization...")
	database.Initialize(db, *migrateFlag, *seedFlag)
	configslog.SLog.Info("Database initialization done.")
}
