package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"

	"health-records-service/internal/domain/entity"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// IDGenerator produces the human readable health and record identifiers.
type IDGenerator struct {
	now    func() time.Time
	random io.Reader
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now, random: rand.Reader}
}

// HealthID returns <PREFIX>_<base36 millis><6 random base36>, uppercase.
func (g *IDGenerator) HealthID(role entity.Role) (string, error) {
	prefix := role.Prefix()
	if prefix == "" {
		return "", fmt.Errorf("no health ID prefix for role %q", role)
	}
	suffix, err := g.randomBase36(6)
	if err != nil {
		return "", err
	}
	stamp := strconv.FormatInt(g.now().UnixMilli(), 36)
	return strings.ToUpper(prefix + "_" + stamp + suffix), nil
}

// RecordID returns REC_<unix millis>_<9 random base36>, uppercase.
func (g *IDGenerator) RecordID() (string, error) {
	suffix, err := g.randomBase36(9)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(fmt.Sprintf("REC_%d_%s", g.now().UnixMilli(), suffix)), nil
}

func (g *IDGenerator) randomBase36(n int) (string, error) {
	base := big.NewInt(int64(len(base36Alphabet)))
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(g.random, base)
		if err != nil {
			return "", fmt.Errorf("generate random id: %w", err)
		}
		b.WriteByte(base36Alphabet[idx.Int64()])
	}
	return b.String(), nil
}
