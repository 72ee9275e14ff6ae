package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// mysqlDuplicateEntry MySQLの一意制約違反のエラー番号
const mysqlDuplicateEntry = 1062

// isDuplicateKeyErr 一意制約違反かどうかを判定
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	// テストで使用するSQLiteは "UNIQUE constraint failed" を返す
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
