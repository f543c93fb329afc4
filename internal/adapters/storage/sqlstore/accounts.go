package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-health-tracker/internal/domain/accounts"
	"pet-health-tracker/internal/platform/apperror"
)

var errAccountNotFound = apperror.NotFound("User")

const accountColumns = `id, email, password, first_name, last_name, created_at`

type AccountsRepo struct {
	*DB
}

var _ accounts.Repository = AccountsRepo{}

func (d *DB) Accounts() AccountsRepo {
	return AccountsRepo{d}
}

func scanAccount(s scanner) (accounts.Account, error) {
	var a accounts.Account
	err := s.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName, timestamp{&a.CreatedAt})
	return a, err
}

func (r AccountsRepo) Create(ctx context.Context, a accounts.Account) (accounts.Account, error) {
	row := r.db.QueryRowContext(ctx, r.rebind(`
		INSERT INTO users (email, password, first_name, last_name, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+accountColumns),
		a.Email, a.PasswordHash, a.FirstName, a.LastName, a.CreatedAt,
	)

	created, err := scanAccount(row)
	if err != nil {
		if r.dialect.IsUniqueViolation(err) {
			return accounts.Account{}, accounts.ErrEmailTaken
		}
		return accounts.Account{}, r.wrap("create account", err)
	}
	return created, nil
}

func (r AccountsRepo) GetByID(ctx context.Context, id int64) (accounts.Account, error) {
	row := r.db.QueryRowContext(ctx, r.rebind(`SELECT `+accountColumns+` FROM users WHERE id = ?`), id)
	return r.one(row, "get account")
}

func (r AccountsRepo) GetByEmail(ctx context.Context, email string) (accounts.Account, error) {
	row := r.db.QueryRowContext(ctx,
		r.rebind(`SELECT `+accountColumns+` FROM users WHERE email = ?`),
		strings.ToLower(strings.TrimSpace(email)),
	)
	return r.one(row, "get account by email")
}

func (r AccountsRepo) UpdateProfile(ctx context.Context, a accounts.Account) (accounts.Account, error) {
	row := r.db.QueryRowContext(ctx, r.rebind(`
		UPDATE users SET email = ?, first_name = ?, last_name = ?
		WHERE id = ?
		RETURNING `+accountColumns),
		a.Email, a.FirstName, a.LastName, a.ID,
	)

	updated, err := scanAccount(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return accounts.Account{}, errAccountNotFound
	case err != nil && r.dialect.IsUniqueViolation(err):
		return accounts.Account{}, accounts.ErrEmailTaken
	case err != nil:
		return accounts.Account{}, r.wrap("update account", err)
	}
	return updated, nil
}

func (r AccountsRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res, err := r.db.ExecContext(ctx, r.rebind(`UPDATE users SET password = ? WHERE id = ?`), hash, id)
	if err != nil {
		return r.wrap("update password", err)
	}
	return expectOne(res, errAccountNotFound)
}

// Delete se apoya en ON DELETE CASCADE para mascotas y registros.
func (r AccountsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.rebind(`DELETE FROM users WHERE id = ?`), id)
	if err != nil {
		return r.wrap("delete account", err)
	}
	return expectOne(res, errAccountNotFound)
}

func (r AccountsRepo) one(row *sql.Row, op string) (accounts.Account, error) {
	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return accounts.Account{}, errAccountNotFound
	}
	if err != nil {
		return accounts.Account{}, r.wrap(op, err)
	}
	return a, nil
}

func expectOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
