package seed

import (
	"math/rand"

	"github.com/Tumi03-data/dash-dashboard/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Semente fixa para que o fixture de demonstração seja reprodutível
const datasetSeed = 0

var demoUsers = []struct {
	username string
	secret   string
	role     domain.Role
}{
	{"lead_user", "leadpass", domain.RoleLead},
	{"team_user", "teampass", domain.RoleMember},
	{"marketing_user", "marketpass", domain.RoleMarketing},
	{"log_user", "logpass", domain.RoleLogAnalyst},
}

var salespersons = []string{"Alice", "Bob", "Charlie", "Diana"}

var countries = []string{"USA", "UK", "Germany", "India", "Canada", "Australia", "Botswana"}

// Credentials retorna o conjunto fixo de credenciais de demonstração, com os
// segredos já armazenados como hash bcrypt
func Credentials() ([]*domain.Credential, error) {
	credentials := make([]*domain.Credential, 0, len(demoUsers))
	for _, user := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.secret), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		credentials = append(credentials, &domain.Credential{
			Username:   user.username,
			SecretHash: string(hash),
			Role:       user.role,
		})
	}

	return credentials, nil
}

// SalesDataset gera o dataset de vendas de demonstração: um registro por mês
// do calendário
func SalesDataset() *domain.SalesDataset {
	rng := rand.New(rand.NewSource(datasetSeed))

	dataset := &domain.SalesDataset{
		Columns: append([]string{}, domain.SalesRequiredColumns...),
		Records: make([]domain.SalesRecord, 0, len(domain.Months)),
	}

	for _, month := range domain.Months {
		dataset.Records = append(dataset.Records, domain.SalesRecord{
			Month:              month,
			CurrentYearRevenue: float64(40000 + rng.Intn(30000)),
			PriorYearRevenue:   float64(30000 + rng.Intn(30000)),
			Profit:             float64(10000 + rng.Intn(20000)),
			Quantity:           300 + rng.Intn(300),
			Channel:            domain.Channels[rng.Intn(len(domain.Channels))],
			ProductLine:        domain.ProductLines[rng.Intn(len(domain.ProductLines))],
			Salesperson:        salespersons[rng.Intn(len(salespersons))],
		})
	}

	return dataset
}

// WebLogDataset gera o dataset de logs web de demonstração. Os valores são
// sorteados de um conjunto de três zeros mais cem valores uniformes, então
// cerca de 3% dos eventos não é monetizado (amount zero).
func WebLogDataset() *domain.WebLogDataset {
	const records = 1000

	rng := rand.New(rand.NewSource(datasetSeed))

	amounts := []float64{0, 0, 0}
	for i := 0; i < 100; i++ {
		amounts = append(amounts, float64(int((100+rng.Float64()*900)*100))/100)
	}

	dataset := &domain.WebLogDataset{
		Columns: append([]string{}, domain.WebLogRequiredColumns...),
		Records: make([]domain.WebLogRecord, 0, records),
	}

	for i := 0; i < records; i++ {
		amount := amounts[rng.Intn(len(amounts))]

		dataset.Records = append(dataset.Records, domain.WebLogRecord{
			Country:   countries[rng.Intn(len(countries))],
			EventType: domain.EventTypes[rng.Intn(len(domain.EventTypes))],
			WebTool:   domain.ProductLines[rng.Intn(len(domain.ProductLines))],
			Amount:    amount,
		})
	}

	return dataset
}
