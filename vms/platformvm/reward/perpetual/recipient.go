// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package perpetual

import (
	"errors"
	"fmt"

	"github.com/Juneo-io/tokenemission/ids"
	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/moment"
)

var (
	ErrUnknownRecipient        = errors.New("unknown distribution recipient")
	ErrParticipationNotByEpoch = errors.New("participation based distributions must be epoch based")
)

type RecipientKind byte

const (
	// ToContractOwner pays the owner of the contract defining the token.
	ToContractOwner RecipientKind = iota
	// ToIdentity pays a fixed identity.
	ToIdentity
	// ToEvonodesByParticipation pays any evonode in proportion to the blocks
	// it proposed in every epoch.
	ToEvonodesByParticipation
)

func (k RecipientKind) String() string {
	switch k {
	case ToContractOwner:
		return "contract owner"
	case ToIdentity:
		return "identity"
	case ToEvonodesByParticipation:
		return "evonodes by participation"
	default:
		return "unknown"
	}
}

type Recipient struct {
	Kind RecipientKind `json:"kind"`
	// Identity is only set for ToIdentity.
	Identity ids.ID `json:"identity"`
}

// ExpectedClaimant returns the only identity allowed to claim. False is
// returned if every identity may claim.
func (r Recipient) ExpectedClaimant(contractOwner ids.ID) (ids.ID, bool) {
	switch r.Kind {
	case ToContractOwner:
		return contractOwner, true
	case ToIdentity:
		return r.Identity, true
	default:
		return ids.Empty, false
	}
}

func (r Recipient) String() string {
	if r.Kind == ToIdentity {
		return fmt.Sprintf("%s %s", r.Kind, r.Identity)
	}
	return r.Kind.String()
}

// Distribution is a perpetual distribution paid to [Recipient].
type Distribution struct {
	Type      DistributionType
	Recipient Recipient
}

func (d Distribution) Verify(creation moment.Moment) error {
	switch d.Recipient.Kind {
	case ToContractOwner, ToIdentity:
	case ToEvonodesByParticipation:
		if d.Type.Kind != moment.EpochBased {
			return fmt.Errorf("%w: distribution is %s based", ErrParticipationNotByEpoch, d.Type.Kind)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownRecipient, d.Recipient.Kind)
	}
	return d.Type.Verify(creation)
}
