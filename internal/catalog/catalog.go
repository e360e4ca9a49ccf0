// Package catalog serves the read-only reference data behind the booking
// form: services, vaccination packages with their static prices, clinic
// facilities and the time-slot grid.
package catalog

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/vactrack/clinic-gateway/internal/model"
)

var services = []model.Service{
	{ID: "dat-lich-tiem-chung", Name: "Đặt lịch tiêm chủng"},
	{ID: "goi-tiem-chung-tron-goi", Name: "Gói tiêm chủng trọn gói"},
	{ID: "tiem-chung-ca-the-hoa", Name: "Tiêm chủng cá thể hóa"},
	{ID: "kham-sang-loc-truoc-tiem", Name: "Khám sàng lọc trước tiêm"},
}

// Prices are in VND.
var packages = []model.Package{
	{ID: "co-ban", Name: "Cơ bản", ServiceID: "goi-tiem-chung-tron-goi", Price: 1_500_000},
	{ID: "tieu-chuan", Name: "Tiêu chuẩn", ServiceID: "goi-tiem-chung-tron-goi", Price: 2_800_000},
	{ID: "cao-cap", Name: "Cao cấp", ServiceID: "goi-tiem-chung-tron-goi", Price: 4_500_000},
	{ID: "ca-the-hoa-12", Name: "Lịch 1-2 tuổi", ServiceID: "tiem-chung-ca-the-hoa", Price: 1_200_000},
	{ID: "ca-the-hoa-35", Name: "Lịch 3-5 tuổi", ServiceID: "tiem-chung-ca-the-hoa", Price: 1_000_000},
	{ID: "ca-the-hoa-6", Name: "Lịch trên 6 tuổi", ServiceID: "tiem-chung-ca-the-hoa", Price: 900_000},
	{ID: "sang-loc-co-ban", Name: "Khám sàng lọc cơ bản", ServiceID: "kham-sang-loc-truoc-tiem", Price: 500_000},
	{ID: "sang-loc-nang-cao", Name: "Khám sàng lọc nâng cao", ServiceID: "kham-sang-loc-truoc-tiem", Price: 800_000},
}

var facilities = []model.Facility{
	{ID: "f1", Name: "VacTrack Trung tâm y tế Hà Nội", Address: "123 Trần Duy Hưng", District: "Cầu Giấy", City: "Hà Nội", Phone: "024.1234.5678", OpeningHours: "08:00 - 17:00"},
	{ID: "f2", Name: "VacTrack Phòng khám đa khoa Quận 1", Address: "456 Nguyễn Huệ", District: "Quận 1", City: "TP. Hồ Chí Minh", Phone: "028.1234.5678", OpeningHours: "08:00 - 17:00"},
	{ID: "f3", Name: "VacTrack Trung tâm tiêm chủng Đà Nẵng", Address: "789 Nguyễn Văn Linh", District: "Hải Châu", City: "Đà Nẵng", Phone: "0236.1234.5678", OpeningHours: "08:00 - 17:00"},
	{ID: "f4", Name: "VacTrack Bệnh viện Nhi Trung ương", Address: "18 Nguyễn Du", District: "Hai Bà Trưng", City: "Hà Nội", Phone: "024.9876.5432", OpeningHours: "07:30 - 17:30"},
}

// defaultSlots is the mocked availability grid used when the upstream has no
// slot endpoint for a facility.
var defaultSlots = []model.BookingSlot{
	{ID: "1", Time: "08:00", Available: true},
	{ID: "2", Time: "08:30", Available: false},
	{ID: "3", Time: "09:00", Available: true},
	{ID: "4", Time: "09:30", Available: true},
	{ID: "5", Time: "10:00", Available: false},
	{ID: "6", Time: "10:30", Available: true},
	{ID: "7", Time: "14:00", Available: true},
	{ID: "8", Time: "14:30", Available: true},
	{ID: "9", Time: "15:00", Available: false},
	{ID: "10", Time: "15:30", Available: true},
	{ID: "11", Time: "16:00", Available: true},
	{ID: "12", Time: "16:30", Available: true},
}

// Catalog answers reference-data lookups, memoizing per-day slot grids.
type Catalog struct {
	slots *gocache.Cache
}

func New() *Catalog {
	return &Catalog{
		slots: gocache.New(10*time.Minute, 30*time.Minute),
	}
}

func (c *Catalog) Services() []model.Service {
	return services
}

func (c *Catalog) Packages() []model.Package {
	return packages
}

// PackagesForService filters packages to those belonging to the service.
func (c *Catalog) PackagesForService(serviceID string) []model.Package {
	var out []model.Package
	for _, p := range packages {
		if p.ServiceID == serviceID {
			out = append(out, p)
		}
	}
	return out
}

// PackageBelongs reports whether the package exists and belongs to the
// service.
func (c *Catalog) PackageBelongs(serviceID, packageID string) bool {
	for _, p := range packages {
		if p.ID == packageID {
			return p.ServiceID == serviceID
		}
	}
	return false
}

// PriceOf returns the static price for a package. Unknown packages report
// ok=false; the booking workflow maps that to amount 0.
func (c *Catalog) PriceOf(packageID string) (int64, bool) {
	for _, p := range packages {
		if p.ID == packageID {
			return p.Price, true
		}
	}
	return 0, false
}

func (c *Catalog) Facilities() []model.Facility {
	return facilities
}

func (c *Catalog) Facility(id string) (*model.Facility, bool) {
	for i := range facilities {
		if facilities[i].ID == id {
			return &facilities[i], true
		}
	}
	return nil, false
}

// DefaultSlots returns the mocked availability grid for a date/facility
// pair, cached per pair.
func (c *Catalog) DefaultSlots(date, facilityID string) []model.BookingSlot {
	key := fmt.Sprintf("%s|%s", date, facilityID)
	if v, ok := c.slots.Get(key); ok {
		return v.([]model.BookingSlot)
	}

	grid := make([]model.BookingSlot, len(defaultSlots))
	copy(grid, defaultSlots)
	c.slots.SetDefault(key, grid)
	return grid
}
