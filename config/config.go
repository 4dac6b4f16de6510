package config

import (
	"fmt"
	"os"

	"github.com/TrungLe-99/ShopViet/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config holds all configuration for the application
type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	JWTSecret      string
	Port           string
	Env            string
	RedisAddr      string
	RedisPassword  string
	VNPayTmnCode   string
	VNPaySecret    string
	VNPayURL       string
	MoMoPartner    string
	MoMoAccessKey  string
	MoMoSecret     string
	MoMoURL        string
	BankName       string
	BankAccount    string
	BankHolder     string
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	PublicBaseURL  string
	UploadsBaseURL string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("ENV"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		VNPayTmnCode:   os.Getenv("VNPAY_TMN_CODE"),
		VNPaySecret:    os.Getenv("VNPAY_HASH_SECRET"),
		VNPayURL:       os.Getenv("VNPAY_URL"),
		MoMoPartner:    os.Getenv("MOMO_PARTNER_CODE"),
		MoMoAccessKey:  os.Getenv("MOMO_ACCESS_KEY"),
		MoMoSecret:     os.Getenv("MOMO_SECRET_KEY"),
		MoMoURL:        os.Getenv("MOMO_URL"),
		BankName:       os.Getenv("BANK_NAME"),
		BankAccount:    os.Getenv("BANK_ACCOUNT_NUMBER"),
		BankHolder:     os.Getenv("BANK_ACCOUNT_HOLDER"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       os.Getenv("SMTP_PORT"),
		SMTPUsername:   os.Getenv("SMTP_USERNAME"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		PublicBaseURL:  os.Getenv("PUBLIC_BASE_URL"),
		UploadsBaseURL: os.Getenv("UPLOADS_BASE_URL"),
	}

	return config, nil
}

// InitDB initializes the database connection
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	err = DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Review{},
		&models.CartItem{},
		&models.Wishlist{},
		&models.Coupon{},
		&models.UserCoupon{},
		&models.UserActiveCoupon{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Address{},
		&models.ShippingZone{},
		&models.ShippingRate{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}
