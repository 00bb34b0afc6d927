package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/avtomag/loyalty/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	GetCustomer = `SELECT id, login, balance, lifetime_earned, lifetime_redeemed
				   FROM CUSTOMERS WHERE id = $1;`
	GetCustomerByLogin = `SELECT id, login, balance, lifetime_earned, lifetime_redeemed
						  FROM CUSTOMERS WHERE login = $1;`
	GetCustomersWithPoints = `SELECT id, login, balance, lifetime_earned, lifetime_redeemed
							  FROM CUSTOMERS
							  WHERE balance >= $1 %s
							  ORDER BY balance DESC
							  LIMIT $2 OFFSET $3;`
)

type CustomerDatabase struct {
	DB *Database
}

// Создание хранилища
func NewCustomersStorage(db *Database) CustomersStorage {
	return &CustomerDatabase{DB: db}
}

func (s *CustomerDatabase) GetCustomer(ctx context.Context, customerID string) (*models.CustomerData, error) {
	return s.scanCustomer(s.DB.Pool.QueryRow(ctx, GetCustomer, customerID))
}

func (s *CustomerDatabase) GetCustomerByLogin(ctx context.Context, login string) (*models.CustomerData, error) {
	return s.scanCustomer(s.DB.Pool.QueryRow(ctx, GetCustomerByLogin, login))
}

func (s *CustomerDatabase) scanCustomer(row pgx.Row) (*models.CustomerData, error) {
	var customer models.CustomerData
	err := row.Scan(
		&customer.CustomerID,
		&customer.Login,
		&customer.Balance,
		&customer.LifetimeEarned,
		&customer.LifetimeRedeemed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

// GetCustomersWithPoints - список покупателей с баллами для админки,
// сортировка по убыванию баланса
func (s *CustomerDatabase) GetCustomersWithPoints(ctx context.Context, filter models.CustomersFilter) ([]models.CustomerData, error) {
	var minBalance int64 = 1
	if filter.MinBalance != nil {
		minBalance = *filter.MinBalance
	}

	// границы по накопленным баллам приходят из сервиса (фильтр по уровню)
	levelCondition := ""
	args := []interface{}{minBalance, filter.Limit, filter.Offset}
	if filter.MinEarned != nil {
		levelCondition = fmt.Sprintf("AND lifetime_earned >= $%d", len(args)+1)
		args = append(args, *filter.MinEarned)
	}
	if filter.MaxEarned != nil {
		levelCondition += fmt.Sprintf(" AND lifetime_earned < $%d", len(args)+1)
		args = append(args, *filter.MaxEarned)
	}

	query := fmt.Sprintf(GetCustomersWithPoints, levelCondition)
	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	defer rows.Close()

	var customers []models.CustomerData
	for rows.Next() {
		var customer models.CustomerData
		err := rows.Scan(
			&customer.CustomerID,
			&customer.Login,
			&customer.Balance,
			&customer.LifetimeEarned,
			&customer.LifetimeRedeemed,
		)
		if err != nil {
			return customers, fmt.Errorf("failed scan customer data: %w", err)
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}
