package cmd

type Config struct {
	HTTPPort                  string
	DBHost                    string
	DBPort                    string
	DBUser                    string
	DBPassword                string
	DBName                    string
	DBSslMode                 string
	MaxConcurrentOrders       int
	MaxPreparationTimeMinutes int
	CriticalCapacityRatio     float64
	OrdersPerStaff            int
}
