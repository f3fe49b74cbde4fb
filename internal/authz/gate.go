// Package authz decides which caller may perform which record operation.
// Decisions are pure: no I/O, no globals, deny unless a rule allows.
package authz

import (
	"context"
	"strings"

	"health-records-service/internal/domain/entity"
	"health-records-service/pkg/apperror"
	"health-records-service/pkg/jwt"

	"github.com/google/uuid"
)

// Caller is the authenticated principal derived from a session token.
type Caller struct {
	ID       uuid.UUID
	HealthID string
	Role     entity.Role
	TokenID  string
}

type Operation string

const (
	OpReadPatientRecords Operation = "read_patient_records"
	OpCreateRecord       Operation = "create_record"
	OpReadAuthored       Operation = "read_authored_records"
	OpSearchPatient      Operation = "search_patient"
	OpRunAnalysis        Operation = "run_analysis"
	OpManageUsers        Operation = "manage_users"
	OpReadAuditLog       Operation = "read_audit_log"
)

type Reason string

const (
	ReasonNone            Reason = ""
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonWrongRole       Reason = "wrong_role"
	ReasonNotOwner        Reason = "not_owner"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

var (
	ErrUnauthenticated = apperror.New(apperror.KindAuth, "authentication required")
	ErrWrongRole       = apperror.New(apperror.KindAuthorization, "role not permitted for this operation")
	ErrNotOwner        = apperror.New(apperror.KindAuthorization, "records belong to another patient")
)

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason Reason) Decision { return Decision{Reason: reason} }

// Authorize evaluates op for caller. targetPatientID is the patient health ID
// the operation is about and is only consulted for OpReadPatientRecords.
func Authorize(caller *Caller, op Operation, targetPatientID string) Decision {
	if caller == nil {
		return deny(ReasonUnauthenticated)
	}

	switch op {
	case OpReadPatientRecords:
		switch caller.Role {
		case entity.RoleDoctor:
			return allow()
		case entity.RolePatient:
			if targetPatientID != "" && strings.EqualFold(strings.TrimSpace(caller.HealthID), strings.TrimSpace(targetPatientID)) {
				return allow()
			}
			return deny(ReasonNotOwner)
		}
		return deny(ReasonWrongRole)
	case OpCreateRecord, OpReadAuthored, OpSearchPatient:
		if caller.Role == entity.RoleDoctor {
			return allow()
		}
		return deny(ReasonWrongRole)
	case OpRunAnalysis:
		return allow()
	case OpManageUsers, OpReadAuditLog:
		if caller.Role == entity.RoleAdmin {
			return allow()
		}
		return deny(ReasonWrongRole)
	}

	return deny(ReasonWrongRole)
}

// Err converts a deny into the matching application error, nil when allowed.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case ReasonUnauthenticated:
		return ErrUnauthenticated
	case ReasonNotOwner:
		return ErrNotOwner
	default:
		return ErrWrongRole
	}
}

// Check is Authorize followed by Err.
func Check(caller *Caller, op Operation, targetPatientID string) error {
	return Authorize(caller, op, targetPatientID).Err()
}

// CallerFromClaims maps validated token claims to a caller. It returns nil
// when the claims carry no usable identity or an unknown role.
func CallerFromClaims(claims *jwt.Claims) *Caller {
	if claims == nil || claims.UserID == uuid.Nil {
		return nil
	}
	role, ok := entity.ParseRole(claims.Role)
	if !ok {
		return nil
	}
	return &Caller{
		ID:       claims.UserID,
		HealthID: strings.ToUpper(claims.HealthID),
		Role:     role,
		TokenID:  claims.TokenID,
	}
}

type contextKey struct{}

func WithCaller(ctx context.Context, caller *Caller) context.Context {
	return context.WithValue(ctx, contextKey{}, caller)
}

// CallerFromContext returns the caller set by the auth middleware, or nil.
func CallerFromContext(ctx context.Context) *Caller {
	caller, _ := ctx.Value(contextKey{}).(*Caller)
	return caller
}
