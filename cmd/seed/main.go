// Command seed fills the database with sample zones and users for local
// development and demos.
//
// Usage:
//
//	seed [-clear]
//
// Requires DATABASE_DSN environment variable to be set. With -clear, all
// existing users and zones are removed first.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedZone struct {
	zoneID   string
	zoneName string
	x1, y1   float64
	x2, y2   float64
	x3, y3   float64
	x4, y4   float64
}

type seedUser struct {
	globalID int64
	name     string
	zoneID   *string
}

func zonePtr(s string) *string { return &s }

var zones = []seedZone{
	{"ZONE_001", "Assembly Area A", 0, 0, 100, 0, 100, 100, 0, 100},
	{"ZONE_002", "Warehouse Section B", 120, 0, 250, 0, 250, 150, 120, 150},
	{"ZONE_003", "Office Area C", 0, 120, 80, 120, 80, 200, 0, 200},
	{"ZONE_004", "Parking Lot D", 100, 120, 250, 120, 250, 250, 100, 250},
	{"ZONE_005", "Security Gate E", 270, 0, 320, 0, 320, 50, 270, 50},
}

var users = []seedUser{
	{1001, "Nguyễn Văn An", zonePtr("ZONE_001")},
	{1002, "Trần Thị Bình", zonePtr("ZONE_001")},
	{1003, "Lê Văn Cường", zonePtr("ZONE_001")},
	{1004, "Phạm Thị Dung", zonePtr("ZONE_002")},
	{1005, "Hoàng Văn Em", zonePtr("ZONE_002")},
	{1006, "Đỗ Thị Phương", zonePtr("ZONE_002")},
	{1007, "Vũ Văn Giang", zonePtr("ZONE_002")},
	{1008, "Mai Thị Hà", zonePtr("ZONE_003")},
	{1009, "Bùi Văn Hùng", zonePtr("ZONE_003")},
	{1010, "Đinh Thị Lan", zonePtr("ZONE_004")},
	{1011, "Trương Văn Minh", zonePtr("ZONE_004")},
	{1012, "Lý Thị Nga", zonePtr("ZONE_004")},
	{1013, "Phan Văn Oanh", zonePtr("ZONE_005")},
	{1014, "Hồ Thị Phương", zonePtr("ZONE_005")},
	{1015, "Đặng Văn Quang", nil},
	{1016, "Võ Thị Rạng", nil},
	{1017, "Cao Văn Sơn", nil},
	{1018, "Dương Thị Tâm", zonePtr("ZONE_001")},
	{1019, "Nông Văn Uy", zonePtr("ZONE_002")},
	{1020, "La Thị Vân", zonePtr("ZONE_003")},
	{1021, "Tạ Văn Xuân", zonePtr("ZONE_004")},
	{1022, "Lâm Thị Yến", zonePtr("ZONE_005")},
	{1023, "Kim Văn Zung", zonePtr("ZONE_001")},
	{1024, "Mạc Thị Ánh", zonePtr("ZONE_002")},
	{1025, "Châu Văn Bảo", zonePtr("ZONE_003")},
}

func main() {
	clear := flag.Bool("clear", false, "delete existing users and zones first")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	if *clear {
		// Users first, they reference zones.
		if _, err := pool.Exec(ctx, "DELETE FROM users"); err != nil {
			log.Fatalf("clear users: %v", err)
		}
		if _, err := pool.Exec(ctx, "DELETE FROM working_zone"); err != nil {
			log.Fatalf("clear zones: %v", err)
		}
		log.Println("cleared existing data")
	}

	for _, z := range zones {
		_, err := pool.Exec(ctx,
			`INSERT INTO working_zone (zone_id, zone_name, x1, y1, x2, y2, x3, y3, x4, y4)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (zone_id) DO NOTHING`,
			z.zoneID, z.zoneName, z.x1, z.y1, z.x2, z.y2, z.x3, z.y3, z.x4, z.y4,
		)
		if err != nil {
			log.Fatalf("insert zone %s: %v", z.zoneID, err)
		}
	}
	log.Printf("seeded %d zones", len(zones))

	for _, u := range users {
		_, err := pool.Exec(ctx,
			"INSERT INTO users (global_id, name, zone_id) VALUES ($1, $2, $3)",
			u.globalID, u.name, u.zoneID,
		)
		if err != nil {
			log.Fatalf("insert user %d: %v", u.globalID, err)
		}
	}
	log.Printf("seeded %d users", len(users))
}
