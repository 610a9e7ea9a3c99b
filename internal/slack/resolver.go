package slack

import (
	"context"
	"errors"
	"fmt"
)

// Resolver performs the two identity lookups that parameterize an audit.
//
//go:generate mockgen -source=resolver.go -destination=./mocks/resolver_mock.go -package=mocks
type Resolver interface {
	ResolveUserID(ctx context.Context, email string) (string, error)
	ResolveDomain(ctx context.Context) (string, error)
}

type resolver struct {
	client Client
}

func NewResolver(client Client) Resolver {
	return &resolver{client: client}
}

func (r *resolver) ResolveUserID(ctx context.Context, email string) (string, error) {
	userID, err := r.client.LookupUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if userID == "" {
		return "", errAPICallFailed(MethodLookupByEmail, []byte(fmt.Sprintf("no user id for %s", email)), errors.New("empty user id"))
	}
	return userID, nil
}

func (r *resolver) ResolveDomain(ctx context.Context) (string, error) {
	domain, err := r.client.TeamDomain(ctx)
	if err != nil {
		return "", err
	}
	if domain == "" {
		return "", errAPICallFailed(MethodTeamInfo, []byte("no team domain in response"), errors.New("empty team domain"))
	}
	return domain, nil
}
