package main

import (
	"log"
	"os"

	attendancemodel "attendly.com/attendly/attendance/model"
	"attendly.com/attendly/core"
	reportmodel "attendly.com/attendly/report/model"
	"attendly.com/attendly/utils"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {

	dsn := os.Getenv("DSN") //"root:development@tcp(localhost:3306)/attendly?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatal(err)
	}

	models := []interface{}{
		&core.Employee{},
		&attendancemodel.AttendanceDay{},
		&reportmodel.Report{},
	}

	for _, m := range models {
		if !db.Migrator().HasTable(m) {
			err := db.Migrator().CreateTable(m)
			if err != nil {
				log.Fatalf("failed to create table for %T: %v", m, err)
			}
		}
	}

	employees := []core.Employee{
		{Code: "EMP001", Name: "Asha Nair", Email: utils.Ptr("asha.nair@example.com"), Department: "Engineering", Role: "employee"},
		{Code: "EMP002", Name: "Rohan Mehta", Email: utils.Ptr("rohan.mehta@example.com"), Department: "Engineering", Role: "employee"},
		{Code: "HR001", Name: "Priya Sharma", Email: utils.Ptr("priya.sharma@example.com"), Department: "HR", Role: "admin"},
	}

	for _, e := range employees {
		if err := db.Where(core.Employee{Code: e.Code}).FirstOrCreate(&e).Error; err != nil {
			log.Fatalf("failed to seed employee %s: %v", e.Code, err)
		}
	}
}
