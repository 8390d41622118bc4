package repository

import (
	"time"

	"github.com/sangkips/kasirpos/internal/domain/entity"
)

// SeedMenu returns the default food-stall catalog: the items every fresh
// install starts with. Prices are whole rupiah.
func SeedMenu() []entity.MenuItem {
	now := time.Now()
	items := []entity.MenuItem{
		{ID: "1", Name: "Nasi Goreng Spesial", Price: 25000, Category: "Makanan Utama", ImageRef: "https://images.unsplash.com/photo-1680674814945-7945d913319c"},
		{ID: "2", Name: "Mie Ayam", Price: 20000, Category: "Makanan Utama", ImageRef: "https://images.unsplash.com/photo-1569924220711-b1648079a75b"},
		{ID: "3", Name: "Bakso", Price: 18000, Category: "Makanan Utama", ImageRef: "https://images.unsplash.com/photo-1722239312531-486bbfd50f18"},
		{ID: "4", Name: "Sate Ayam", Price: 30000, Category: "Makanan Utama", ImageRef: "https://images.unsplash.com/photo-1634871572365-8bc444e6faea"},
		{ID: "5", Name: "Ayam Goreng", Price: 22000, Category: "Makanan Utama", ImageRef: "https://images.unsplash.com/photo-1626645738196-c2a7c87a8f58"},
		{ID: "6", Name: "Rendang", Price: 35000, Category: "Makanan Utama", ImageRef: "https://images.unsplash.com/photo-1638569099509-2f46eb4bb94e"},
		{ID: "7", Name: "Gado-Gado", Price: 18000, Category: "Makanan Utama", ImageRef: "https://images.unsplash.com/photo-1707269561481-a4a0370a980a"},
		{ID: "8", Name: "Soto Ayam", Price: 20000, Category: "Makanan Utama", ImageRef: "https://images.unsplash.com/photo-1572656631137-7935297eff55"},
		{ID: "9", Name: "Capcay", Price: 22000, Category: "Makanan Utama", ImageRef: "https://images.unsplash.com/photo-1700150618387-3f46b6d2cf8e"},
		{ID: "10", Name: "Nasi Goreng Seafood", Price: 28000, Category: "Makanan Utama", ImageRef: "https://images.unsplash.com/photo-1707269714960-320c5d6f47b7"},
		{ID: "11", Name: "Pecel Lele", Price: 19000, Category: "Makanan Utama", ImageRef: "https://images.unsplash.com/photo-1612426357506-8b66a851fbe6"},
		{ID: "12", Name: "Nasi Uduk", Price: 17000, Category: "Makanan Utama", ImageRef: "https://images.unsplash.com/photo-1505216980056-a7b7b1c6e000"},
		{ID: "13", Name: "Es Teh Manis", Price: 5000, Category: "Minuman", ImageRef: "https://images.unsplash.com/photo-1626759292870-5813c8c647c9"},
		{ID: "14", Name: "Jus Jeruk", Price: 12000, Category: "Minuman", ImageRef: "https://images.unsplash.com/photo-1600271886742-f049cd451bba"},
		{ID: "15", Name: "Kopi", Price: 10000, Category: "Minuman", ImageRef: "https://images.unsplash.com/photo-1592663527359-cf6642f54cff"},
		{ID: "16", Name: "Teh Tarik", Price: 8000, Category: "Minuman", ImageRef: "https://images.unsplash.com/photo-1674749232554-2ac15ced3954"},
		{ID: "17", Name: "Jus Alpukat", Price: 15000, Category: "Minuman", ImageRef: "https://images.unsplash.com/photo-1623123093799-70a72826e167"},
		{ID: "18", Name: "Jus Mangga", Price: 13000, Category: "Minuman", ImageRef: "https://images.unsplash.com/photo-1604298331663-de303fbc7059"},
		{ID: "19", Name: "Es Lemon Tea", Price: 8000, Category: "Minuman", ImageRef: "https://images.unsplash.com/photo-1599390719613-912787a6e65a"},
		{ID: "20", Name: "Cappuccino", Price: 18000, Category: "Minuman", ImageRef: "https://images.unsplash.com/photo-1708430651927-20e2e1f1e8f7"},
	}
	for i := range items {
		items[i].Available = true
		items[i].CreatedAt = now
	}
	return items
}
