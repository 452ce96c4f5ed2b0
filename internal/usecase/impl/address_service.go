// Package impl contains the implementation of the application's business logic.
package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "doorstep/internal/delivery/context"
	"doorstep/internal/domain/entity"
	domainerrors "doorstep/internal/domain/errors"
	"doorstep/internal/domain/repository"
	"doorstep/internal/domain/service"
	"doorstep/internal/domain/wizard"
	"doorstep/internal/errors"
	"doorstep/internal/usecase"

	"github.com/agnivade/levenshtein"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo repository.AddressRepository
	exporter    service.GeoExporter
	qrService   service.QRCodeService
	policy      wizard.Policy
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Exporter    service.GeoExporter
	QRService   service.QRCodeService
	Policy      wizard.Policy
	Logger      *slog.Logger
}

// NewAddressService creates a new address service instance
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
		exporter:    params.Exporter,
		qrService:   params.QRService,
		policy:      params.Policy,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses filters the records and summarizes all of them.
func (srv *addressService) ListAddresses(ctx context.Context, query string) (*usecase.AddressList, error) {
	records, err := srv.addressRepo.ListAddresses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	list := &usecase.AddressList{
		Addresses: make([]*usecase.AddressView, 0, len(records)),
		Summary:   wizard.Summarize(records),
	}
	for _, rec := range records {
		if matchesSearch(rec, query) {
			list.Addresses = append(list.Addresses, srv.view(rec, false))
		}
	}

	return list, nil
}

// matchesSearch reports whether the given or validated address contains
// query, ignoring case. A blank query matches everything.
func matchesSearch(rec *entity.AddressRecord, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(rec.GivenAddress), q) {
		return true
	}

	return rec.ValidatedAddress != nil && strings.Contains(strings.ToLower(*rec.ValidatedAddress), q)
}

// GetAddress returns a record with its gate evaluated under default UI flags.
func (srv *addressService) GetAddress(ctx context.Context, id string) (*usecase.AddressView, error) {
	rec, err := srv.findAddress(ctx, id)
	if err != nil {
		return nil, err
	}

	return srv.view(rec, true), nil
}

// UpdateAddress merges patch into the record.
func (srv *addressService) UpdateAddress(ctx context.Context, id string, patch *entity.AddressPatch) (*usecase.AddressView, error) {
	_, rec, ok := srv.addressRepo.UpdateAddress(ctx, id, patch)
	if !ok {
		srv.log(ctx).Debug("Ignoring update of unknown address", slog.String("address_id", id))

		return nil, nil //nolint:nilnil
	}

	srv.log(ctx).Info("Address updated",
		slog.String("address_id", id),
		slog.String("wizard_status", string(rec.WizardStatus)),
		slog.Int("steps_completed", rec.StepsCompleted),
	)

	return srv.view(rec, true), nil
}

// ValidationCandidates builds the suggestion list from the given address.
func (srv *addressService) ValidationCandidates(ctx context.Context, id, query string) ([]usecase.Candidate, error) {
	rec, err := srv.findAddress(ctx, id)
	if err != nil {
		return nil, err
	}

	return rankCandidates(candidateAddresses(rec), query), nil
}

// candidateAddresses returns the raw suggestions for a record. The street and
// avenue variants reuse the first two comma separated parts of the given text.
func candidateAddresses(rec *entity.AddressRecord) []string {
	parts := strings.Split(rec.GivenAddress, ",")
	street := parts[0]
	rest := ""
	if len(parts) > 1 {
		rest = strings.TrimSpace(parts[1])
	}

	validated := ""
	if rec.ValidatedAddress != nil {
		validated = *rec.ValidatedAddress
	}

	return []string{
		rec.GivenAddress,
		validated,
		street + " Street, " + rest,
		street + " Avenue, " + rest,
	}
}

// rankCandidates drops empty and duplicate entries, keeps the ones containing
// query and orders them by edit distance to it. Ties keep their input order.
func rankCandidates(raw []string, query string) []usecase.Candidate {
	q := strings.ToLower(strings.TrimSpace(query))
	seen := make(map[string]struct{}, len(raw))
	out := make([]usecase.Candidate, 0, len(raw))

	for _, addr := range raw {
		if addr == "" {
			continue
		}
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}

		lower := strings.ToLower(addr)
		if q != "" && !strings.Contains(lower, q) {
			continue
		}

		c := usecase.Candidate{Address: addr}
		if q != "" {
			c.Distance = levenshtein.ComputeDistance(lower, q)
		}
		out = append(out, c)
	}

	slices.SortStableFunc(out, func(a, b usecase.Candidate) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	return out
}

// ExportGeoJSON renders the record's drawn features.
func (srv *addressService) ExportGeoJSON(ctx context.Context, id string) (*geojson.FeatureCollection, error) {
	rec, err := srv.findAddress(ctx, id)
	if err != nil {
		return nil, err
	}

	return srv.exporter.FeatureCollection(rec), nil
}

// GenerateQRCode returns the share code of a record.
func (srv *addressService) GenerateQRCode(ctx context.Context, id string) ([]byte, string, error) {
	rec, err := srv.findAddress(ctx, id)
	if err != nil {
		return nil, "", err
	}

	png, err := srv.qrService.GenerateRecordQR(rec.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate QR code",
			slog.String("address_id", rec.ID),
			slog.Any("error", err),
		)

		return nil, "", domainerrors.ErrQRCodeFailed.WrapMessage(err.Error())
	}

	return png, srv.qrService.RecordLink(rec.ID), nil
}

func (srv *addressService) findAddress(ctx context.Context, id string) (*entity.AddressRecord, error) {
	rec, err := srv.addressRepo.FindAddressByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound.WrapMessage("address " + id)
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return rec, nil
}

func (srv *addressService) view(rec *entity.AddressRecord, withGate bool) *usecase.AddressView {
	progress := wizard.Derive(rec, srv.policy)
	v := &usecase.AddressView{
		Record:   rec,
		Progress: progress,
		Label:    progress.Label(),
	}
	if withGate {
		gate := wizard.Evaluate(rec, wizard.UIFlags{}, srv.policy)
		v.Gate = &gate
	}

	return v
}
