package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"tourbook/internal/database"
	"tourbook/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tourbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Customer{},
		&domain.Admin{},
		&domain.Employee{},
		&domain.TourGuide{},
		&domain.Driver{},
		&domain.Tour{},
		&domain.Promotion{},
		&domain.Vehicle{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.TourItineraryDay{},
		&domain.CustomItineraryDay{},
		&domain.ItineraryRequest{},
		&domain.ChangeRequest{},
		&domain.Rating{},
		&domain.RefundNotification{},
		&domain.LiveLocation{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data in dependency order.
	log.Println("Cleaning old data...")
	for _, table := range []string{
		"live_locations", "refund_notifications", "ratings",
		"change_requests", "itinerary_requests", "custom_itinerary",
		"itinerary", "payments", "bookings", "vehicles", "promotion",
		"tours", "drivers", "tourguides", "employees", "admins",
		"customers", "users",
	} {
		db.Exec("DELETE FROM " + table)
	}

	log.Println("Creating users...")

	admin := createUser(db, "admin", "admin@tourbook.kz", "Admin123!", domain.RoleAdmin, "Aigerim", "Sadykova")
	db.Create(&domain.Admin{UserID: admin.ID})
	log.Println("Admin created: admin@tourbook.kz / Admin123!")

	employee := createUser(db, "employee1", "employee@tourbook.kz", "Employee123!", domain.RoleEmployee, "Bekzat", "Omarov")
	hire := time.Now().AddDate(-2, 0, 0)
	db.Create(&domain.Employee{UserID: employee.ID, Position: "operations", Salary: 350000, HireDate: &hire})

	guides := make([]domain.User, 0, 2)
	for i, name := range []string{"Gulnaz", "Yerlan"} {
		u := createUser(db, fmt.Sprintf("guide%d", i+1),
			fmt.Sprintf("guide%d@tourbook.kz", i+1), "Guide123!", domain.RoleTourGuide, name, "Tulegenov")
		db.Create(&domain.Employee{UserID: u.ID, Position: "tour guide", Salary: 280000, HireDate: &hire})
		db.Create(&domain.TourGuide{UserID: u.ID, LanguagesSpoken: "kazakh,russian,english", ExperienceYears: 3 + i})
		guides = append(guides, u)
	}

	drivers := make([]domain.User, 0, 2)
	for i, name := range []string{"Aidar", "Dina"} {
		u := createUser(db, fmt.Sprintf("driver%d", i+1),
			fmt.Sprintf("driver%d@tourbook.kz", i+1), "Driver123!", domain.RoleDriver, name, "Abenov")
		db.Create(&domain.Employee{UserID: u.ID, Position: "driver", Salary: 250000, HireDate: &hire})
		db.Create(&domain.Driver{UserID: u.ID, LicenseNumber: fmt.Sprintf("KZ-DR-%04d", 1200+i)})
		drivers = append(drivers, u)
	}

	customers := make([]domain.User, 0, 3)
	for i, name := range []string{"Asel", "Marat", "Saule"} {
		u := createUser(db, fmt.Sprintf("customer%d", i+1),
			fmt.Sprintf("customer%d@mail.kz", i+1), "Customer123!", domain.RoleCustomer, name, "Nurlanova")
		db.Create(&domain.Customer{UserID: u.ID, Address: fmt.Sprintf("Almaty, Abay ave %d", 10+i)})
		customers = append(customers, u)
	}

	log.Println("Creating tours and vehicles...")

	tours := []domain.Tour{
		{Name: "Charyn Canyon Day Trip", Destination: "Charyn", DurationDays: 1, Price: 25000, Availability: true, TourGuideID: &guides[0].ID, ImagePath: "/images/charyn.jpg"},
		{Name: "Kolsai Lakes Weekend", Destination: "Kolsai", DurationDays: 3, Price: 90000, Availability: true, TourGuideID: &guides[1].ID, ImagePath: "/images/kolsai.jpg"},
		{Name: "Altyn Emel Expedition", Destination: "Altyn Emel", DurationDays: 5, Price: 180000, Availability: false, ImagePath: "/images/altynemel.jpg"},
	}
	for i := range tours {
		db.Create(&tours[i])
	}

	until := time.Now().AddDate(0, 1, 0)
	db.Create(&domain.Promotion{TourID: tours[1].ID, DiscountPercent: 15, ValidUntil: &until})

	for day := 1; day <= 3; day++ {
		db.Create(&domain.TourItineraryDay{
			TourID:      tours[1].ID,
			DayNumber:   day,
			Title:       fmt.Sprintf("Day %d", day),
			Description: "Hiking and lake visits",
			Location:    "Kolsai",
		})
	}

	vehicles := []domain.Vehicle{
		{DriverID: &drivers[0].ID, Make: "Toyota", Model: "Hiace", Capacity: 12, DailyRate: 30000, Status: "available"},
		{DriverID: &drivers[1].ID, Make: "Hyundai", Model: "Staria", Capacity: 8, DailyRate: 25000, Status: "available"},
		{Make: "Kia", Model: "Carnival", Capacity: 7, DailyRate: 22000, Status: "maintenance"},
	}
	for i := range vehicles {
		db.Create(&vehicles[i])
	}

	log.Println("Creating bookings...")

	start := time.Now().AddDate(0, 0, 14)
	end := start.AddDate(0, 0, 3)
	booking := domain.Booking{
		UserID:         customers[0].ID,
		TourID:         &tours[1].ID,
		VehicleID:      &vehicles[0].ID,
		DriverID:       &drivers[0].ID,
		TourGuideID:    &guides[1].ID,
		StartDate:      start,
		EndDate:        end,
		TotalPrice:     tours[1].Price,
		Status:         domain.BookingConfirmed,
		NumberOfPeople: 4,
	}
	db.Create(&booking)

	db.Create(&domain.Payment{
		BookingID:     booking.ID,
		Amount:        booking.TotalPrice,
		Method:        "card",
		Status:        domain.PaymentCompleted,
		TransactionID: "seed-txn-0001",
	})

	log.Println("Seed complete.")
}

func createUser(db *gorm.DB, username, email, password string, role domain.UserRole, firstName, lastName string) domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	u := domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		FirstName:    firstName,
		LastName:     lastName,
	}
	db.Create(&u)
	return u
}
