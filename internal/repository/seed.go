package repository

import (
	"time"

	"github.com/qztech/asset-console/internal/domain"
)

// Seed loads the demo dataset. The fixtures pin their dates relative to now
// so warranty and maintenance buckets stay populated regardless of when the
// process starts.
func (s *MemoryStore) Seed(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }
	datePtr := func(t time.Time) *time.Time { return &t }
	intPtr := func(v int) *int { return &v }

	s.customers = []domain.Customer{
		{ID: 1, Name: "群兆科技股份有限公司", Email: "contact@example1.com", Phone: "02-1234-5678", Status: domain.CustomerStatusActive},
		{ID: 2, Name: "創新軟體有限公司", Email: "contact@example2.com", Phone: "02-2345-6789", Status: domain.CustomerStatusActive},
		{ID: 3, Name: "未來科技公司", Email: "contact@example3.com", Phone: "02-3456-7890", Status: domain.CustomerStatusActive},
		{ID: 4, Name: "智慧解決方案股份有限公司", Email: "contact@example4.com", Phone: "02-4567-8901", Status: domain.CustomerStatusActive},
	}
	s.nextCustomerID = 5

	s.devices = []domain.Device{
		{ID: 1, Name: "主伺服器-01", Type: domain.DeviceTypeServer, Model: "Dell PowerEdge R740", SerialNumber: "DELL-2024-001", CustomerID: 1, CustomerName: "群兆科技股份有限公司", Status: domain.DeviceStatusActive, WarrantyExpiry: datePtr(day(400))},
		{ID: 2, Name: "備份儲存設備", Type: domain.DeviceTypeStorage, Model: "Synology DS1821+", SerialNumber: "SYN-2024-002", CustomerID: 1, CustomerName: "群兆科技股份有限公司", Status: domain.DeviceStatusActive, WarrantyExpiry: datePtr(day(20))},
		{ID: 3, Name: "核心路由器", Type: domain.DeviceTypeNetwork, Model: "Cisco ISR 4321", SerialNumber: "CISCO-2024-003", CustomerID: 2, CustomerName: "創新軟體有限公司", Status: domain.DeviceStatusActive, WarrantyExpiry: datePtr(day(75))},
		{ID: 4, Name: "工作站-005", Type: domain.DeviceTypeComputer, Model: "HP EliteDesk 800 G9", SerialNumber: "HP-2024-004", CustomerID: 1, CustomerName: "群兆科技股份有限公司", Status: domain.DeviceStatusMaintenance, WarrantyExpiry: datePtr(day(-10))},
		{ID: 5, Name: "Microsoft 365 商務版", Type: domain.DeviceTypeM365, Model: "Business Premium", SerialNumber: "M365-2024-005", CustomerID: 3, CustomerName: "未來科技公司", Status: domain.DeviceStatusActive, WarrantyExpiry: datePtr(day(3))},
		{ID: 6, Name: "辦公室印表機", Type: domain.DeviceTypePrinter, Model: "HP LaserJet Pro M404", SerialNumber: "HP-2024-006", CustomerID: 4, CustomerName: "智慧解決方案股份有限公司", Status: domain.DeviceStatusFaulty},
	}
	s.nextDeviceID = 7

	s.technicians = []domain.Technician{
		{ID: 1, Name: "張工程師", Email: "chang@qztech.example", Speciality: "hardware", Workload: 1},
		{ID: 2, Name: "李工程師", Email: "lee@qztech.example", Speciality: "software", Workload: 0},
		{ID: 3, Name: "王技術員", Email: "wang@qztech.example", Speciality: "network", Workload: 0},
		{ID: 4, Name: "陳技術員", Email: "chen@qztech.example", Speciality: "hardware", Workload: 0},
	}
	s.nextTechnicianID = 5

	s.tickets = []domain.Ticket{
		{
			ID: "TK-2024-001", Title: "主伺服器無法啟動", Description: "伺服器無法開機",
			Category: domain.TicketCategoryHardware, Priority: domain.TicketPriorityHigh,
			Status: domain.TicketStatusOpen, CustomerID: 1, CustomerName: "群兆科技股份有限公司",
			DeviceID: intPtr(1), DeviceName: "主伺服器-01", AssignedTo: "張工程師",
			CreatedAt: day(-2), UpdatedAt: day(-2),
			Comments:  []domain.TicketComment{},
			History: []domain.TicketHistoryEntry{
				{Timestamp: day(-2), Status: domain.TicketStatusOpen, Comment: "建立工單"},
			},
		},
	}
	s.ticketSeq = 1

	s.maintenances = []domain.MaintenanceSchedule{
		{
			ID: 1, DeviceID: 1, DeviceName: "主伺服器-01", DeviceType: domain.DeviceTypeServer,
			CustomerName: "群兆科技股份有限公司", MaintenanceType: "preventive",
			Frequency: domain.FrequencyQuarterly, AssignedTechnician: "張工程師", Active: true,
			LastMaintenance: datePtr(day(-88)), NextMaintenance: datePtr(day(2)),
			Status: domain.MaintenanceStatusScheduled, CompletedMaintenances: 3, TotalMaintenances: 3,
		},
		{
			ID: 2, DeviceID: 3, DeviceName: "核心路由器", DeviceType: domain.DeviceTypeNetwork,
			CustomerName: "創新軟體有限公司", MaintenanceType: "inspection",
			Frequency: domain.FrequencyMonthly, AssignedTechnician: "王技術員", Active: true,
			LastMaintenance: datePtr(day(-35)), NextMaintenance: datePtr(day(-5)),
			Status: domain.MaintenanceStatusScheduled, CompletedMaintenances: 11, TotalMaintenances: 12,
		},
		{
			ID: 3, DeviceID: 2, DeviceName: "備份儲存設備", DeviceType: domain.DeviceTypeStorage,
			CustomerName: "群兆科技股份有限公司", MaintenanceType: "preventive",
			Frequency: domain.FrequencyCustom, CustomDays: 45, AssignedTechnician: "陳技術員", Active: true,
			NextMaintenance: datePtr(day(20)),
			Status:          domain.MaintenanceStatusScheduled, CompletedMaintenances: 2, TotalMaintenances: 2,
		},
	}
	s.nextMaintenanceID = 4

	s.inventories = []domain.InventorySession{
		{
			ID: 1, Name: "2024 Q1 設備盤點", Type: "quarterly", CustomerID: 1,
			CustomerName: "群兆科技股份有限公司", Status: domain.InventoryStatusCompleted,
			ScheduledDate: datePtr(day(-30)),
			TotalDevices:  4, CheckedDevices: 4, NormalDevices: 3, AbnormalDevices: 1, MissingDevices: 0,
		},
		{
			ID: 2, Name: "創新軟體年度盤點", Type: "annual", CustomerID: 2,
			CustomerName: "創新軟體有限公司", Status: domain.InventoryStatusInProgress,
			ScheduledDate: datePtr(day(-3)),
			TotalDevices:  1, CheckedDevices: 0,
		},
		{
			ID: 3, Name: "未來科技授權盤點", Type: "monthly", CustomerID: 3,
			CustomerName: "未來科技公司", Status: domain.InventoryStatusScheduled,
			ScheduledDate: datePtr(day(7)),
			TotalDevices:  1,
		},
	}
	s.nextInventoryID = 4
}
