// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reward

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Juneo-io/tokenemission/ids"
	"github.com/Juneo-io/tokenemission/utils/logging"
	"github.com/Juneo-io/tokenemission/vms/platformvm/metrics"
	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/distribution"
	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/moment"
	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/perpetual"
)

var (
	_ Calculator = (*calculator)(nil)

	ErrWrongClaimant    = errors.New("identity is not allowed to claim this distribution")
	ErrNoCurrentRewards = errors.New("no rewards to claim")
	ErrNotSupported     = errors.New("claim not supported")
)

// ClaimRequest is a claim of the perpetual distribution of a token.
type ClaimRequest struct {
	TokenID  ids.ID
	Claimant ids.ID
	// ContractOwner owns the contract that defines the token.
	ContractOwner ids.ID
	// CreationMoment is the moment the contract was registered, measured in
	// the kind of the distribution.
	CreationMoment moment.Moment
	Distribution   perpetual.Distribution
	// BlockInfo is the block executing the claim.
	BlockInfo moment.BlockInfo
}

type ClaimResult struct {
	Amount uint64
	// PaidFrom is the exclusive start of the paid interval.
	PaidFrom moment.Moment
	// PaidUntil is the inclusive end of the paid interval. It is persisted as
	// the new last paid moment.
	PaidUntil moment.Moment
}

type PreProgrammedClaimResult struct {
	Amount      uint64
	TimestampMs uint64
}

type Calculator interface {
	// ClaimPerpetual pays every cycle of the distribution since the last claim
	// of the claimant, up to the configured maximum number of cycles.
	ClaimPerpetual(ctx context.Context, req ClaimRequest) (ClaimResult, error)

	// ClaimPreProgrammed pays the oldest unpaid scheduled payout of [claimant]
	// released at or before [nowMs].
	ClaimPreProgrammed(
		tokenID ids.ID,
		claimant ids.ID,
		schedule *perpetual.PreProgrammed,
		nowMs uint64,
	) (PreProgrammedClaimResult, error)
}

type calculator struct {
	config  Config
	state   State
	epochs  EpochInfoGetter
	log     logging.Logger
	metrics metrics.Metrics
}

func NewCalculator(
	config Config,
	state State,
	epochs EpochInfoGetter,
	log logging.Logger,
	registerer prometheus.Registerer,
) (Calculator, error) {
	if err := config.Verify(); err != nil {
		return nil, err
	}
	m, err := metrics.New(config.MetricsNamespace, registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register claim metrics: %w", err)
	}
	return &calculator{
		config:  config,
		state:   state,
		epochs:  epochs,
		log:     log,
		metrics: m,
	}, nil
}

func (c *calculator) ClaimPerpetual(ctx context.Context, req ClaimRequest) (ClaimResult, error) {
	result, err := c.claimPerpetual(ctx, req)
	if err != nil {
		c.metrics.MarkClaimFailed()
		c.log.Debug("perpetual claim rejected",
			zap.Stringer("tokenID", req.TokenID),
			zap.Stringer("claimant", req.Claimant),
			zap.Error(err),
		)
		return ClaimResult{}, err
	}

	c.log.Info("perpetual claim paid",
		zap.Stringer("tokenID", req.TokenID),
		zap.Stringer("claimant", req.Claimant),
		zap.Stringer("recipient", req.Distribution.Recipient),
		zap.Uint64("amount", result.Amount),
		zap.Stringer("lastPaid", result.PaidFrom),
		zap.Stringer("paidUntil", result.PaidUntil),
	)
	if err := c.metrics.MarkClaimed(req.Distribution.Type.Function, result.Amount); err != nil {
		c.log.Warn("failed to record perpetual claim",
			zap.Stringer("tokenID", req.TokenID),
			zap.Error(err),
		)
	}
	return result, nil
}

func (c *calculator) claimPerpetual(ctx context.Context, req ClaimRequest) (ClaimResult, error) {
	recipient := req.Distribution.Recipient
	if expected, ok := recipient.ExpectedClaimant(req.ContractOwner); ok && expected != req.Claimant {
		return ClaimResult{}, fmt.Errorf("%w: paid to %s but claimed by %s",
			ErrWrongClaimant,
			expected,
			req.Claimant,
		)
	}

	distributionType := req.Distribution.Type
	creationCycleStart, err := req.CreationMoment.CycleStart(distributionType.IntervalMoment())
	if err != nil {
		return ClaimResult{}, fmt.Errorf("failed to align contract creation: %w", err)
	}

	lastPaid, found, err := c.state.GetPerpetualLastPaid(req.TokenID, req.Claimant)
	if err != nil {
		return ClaimResult{}, fmt.Errorf("failed to fetch last paid moment: %w", err)
	}
	if !found {
		lastPaid = creationCycleStart
	}

	current, err := distributionType.CurrentCycleMoment(req.BlockInfo)
	if err != nil {
		return ClaimResult{}, err
	}
	maxCycle, err := distributionType.MaxCycleMoment(lastPaid, current, uint64(c.config.MaxTokenRedemptionCycles))
	if err != nil {
		return ClaimResult{}, err
	}

	var getRewardRatio distribution.RewardRatioFunc
	if recipient.Kind == perpetual.ToEvonodesByParticipation {
		if lastPaid.Kind != moment.EpochBased {
			return ClaimResult{}, fmt.Errorf("%w: participation rewards paid from %s",
				ErrNotSupported,
				lastPaid,
			)
		}
		epochs, err := c.epochs.GetFinalizedEpochInfos(ctx, lastPaid.Value, req.BlockInfo.Epoch)
		if err != nil {
			return ClaimResult{}, fmt.Errorf("failed to fetch finalized epochs: %w", err)
		}
		getRewardRatio = ParticipationRatios(epochs, req.Claimant)
	}

	amount, err := distributionType.RewardsInInterval(creationCycleStart, lastPaid, maxCycle, getRewardRatio)
	if err != nil {
		return ClaimResult{}, err
	}

	c.log.Debug("evaluated perpetual distribution",
		zap.Stringer("tokenID", req.TokenID),
		zap.Stringer("distribution", distributionType),
		zap.Stringer("lastPaid", lastPaid),
		zap.Stringer("current", current),
		zap.Stringer("paidUntil", maxCycle),
		zap.Uint64("amount", amount),
	)
	if amount == 0 {
		return ClaimResult{}, fmt.Errorf("%w: token %s for %s after %s",
			ErrNoCurrentRewards,
			req.TokenID,
			req.Claimant,
			lastPaid,
		)
	}

	if err := c.state.SetPerpetualLastPaid(req.TokenID, req.Claimant, maxCycle); err != nil {
		return ClaimResult{}, fmt.Errorf("failed to persist last paid moment: %w", err)
	}
	return ClaimResult{
		Amount:    amount,
		PaidFrom:  lastPaid,
		PaidUntil: maxCycle,
	}, nil
}

func (c *calculator) ClaimPreProgrammed(
	tokenID ids.ID,
	claimant ids.ID,
	schedule *perpetual.PreProgrammed,
	nowMs uint64,
) (PreProgrammedClaimResult, error) {
	result, err := c.claimPreProgrammed(tokenID, claimant, schedule, nowMs)
	if err != nil {
		c.metrics.MarkClaimFailed()
		c.log.Debug("pre-programmed claim rejected",
			zap.Stringer("tokenID", tokenID),
			zap.Stringer("claimant", claimant),
			zap.Error(err),
		)
		return PreProgrammedClaimResult{}, err
	}

	c.metrics.MarkPreProgrammedClaimed(result.Amount)
	c.log.Info("pre-programmed claim paid",
		zap.Stringer("tokenID", tokenID),
		zap.Stringer("claimant", claimant),
		zap.Uint64("amount", result.Amount),
		zap.Uint64("timestampMs", result.TimestampMs),
	)
	return result, nil
}

func (c *calculator) claimPreProgrammed(
	tokenID ids.ID,
	claimant ids.ID,
	schedule *perpetual.PreProgrammed,
	nowMs uint64,
) (PreProgrammedClaimResult, error) {
	lastPaidMs, found, err := c.state.GetPreProgrammedLastPaid(tokenID, claimant)
	if err != nil {
		return PreProgrammedClaimResult{}, fmt.Errorf("failed to fetch last paid timestamp: %w", err)
	}
	var lastPaid *uint64
	if found {
		lastPaid = &lastPaidMs
	}

	timestampMs, amount, ok := schedule.NextUnpaid(claimant, lastPaid, nowMs)
	if !ok {
		return PreProgrammedClaimResult{}, fmt.Errorf("%w: no payout of token %s released for %s at %d",
			ErrNoCurrentRewards,
			tokenID,
			claimant,
			nowMs,
		)
	}

	if err := c.state.SetPreProgrammedLastPaid(tokenID, claimant, timestampMs); err != nil {
		return PreProgrammedClaimResult{}, fmt.Errorf("failed to persist last paid timestamp: %w", err)
	}
	return PreProgrammedClaimResult{
		Amount:      amount,
		TimestampMs: timestampMs,
	}, nil
}
