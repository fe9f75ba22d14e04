package console

import (
	"context"
	"fmt"
	"io"

	"github.com/marketbay/storefront/internal/commerce/domain"
	"github.com/marketbay/storefront/internal/commerce/ports"
)

// ProfileView is the user profile screen: the saved shipping address, or
// an explicit "nothing saved yet" empty state.
type ProfileView struct {
	service ports.AddressService
	notify  Notifier

	address *domain.Address
}

func NewProfileView(service ports.AddressService, notify Notifier) *ProfileView {
	return &ProfileView{service: service, notify: notify}
}

func (v *ProfileView) Load(ctx context.Context) {
	address, err := v.service.Get(ctx)
	if err != nil {
		v.notify.Error("Failed to load address")
		return
	}
	v.address = address
}

// Save creates the address on first save and updates it afterwards.
func (v *ProfileView) Save(ctx context.Context, input ports.AddressInput) {
	var (
		address *domain.Address
		err     error
	)
	if v.address != nil {
		address, err = v.service.Update(ctx, input)
	} else {
		address, err = v.service.Create(ctx, input)
	}
	if err != nil {
		v.notify.Error(failureMessage(err, "Failed to save address"))
		return
	}
	v.address = address
	v.notify.Success("Address saved")
}

func (v *ProfileView) Render(w io.Writer) {
	if v.address == nil {
		fmt.Fprintln(w, "No address saved yet.")
		return
	}
	a := v.address
	fmt.Fprintf(w, "%s\n%s %s\n%s\n", a.Street, a.ZipCode, a.City, a.Country)
}
