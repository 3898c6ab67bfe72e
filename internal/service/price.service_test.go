package service

import (
	"context"
	"fmt"
	"testing"

	"fincontrol/internal/domain"
	mock_repository "fincontrol/internal/repository/mocks"
	"fincontrol/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_ListPrices(t *testing.T) {
	start := util.NewDate(2020, 1, 1)
	series := domain.NewPriceSeries([]domain.PricePoint{
		{Date: util.NewDate(2020, 1, 2), Price: 100},
		{Date: util.NewDate(2020, 1, 3), Price: 101},
	})

	t.Run("serves repeat requests from the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
		marketDataRepository.EXPECT().
			ListPrices("VWRA.L", start, nil).
			Return(series, nil).
			Times(1)

		handler := NewPriceService(nil, marketDataRepository, nil)

		first := handler.ListPrices(context.Background(), "VWRA.L", start, nil)
		second := handler.ListPrices(context.Background(), "VWRA.L", start, nil)

		require.Empty(t, cmp.Diff(series, first))
		require.Empty(t, cmp.Diff(series, second))
	})

	t.Run("distinct ranges are distinct cache entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
		otherStart := util.NewDate(2021, 1, 1)
		marketDataRepository.EXPECT().ListPrices("VWRA.L", start, nil).Return(series, nil)
		marketDataRepository.EXPECT().ListPrices("VWRA.L", otherStart, nil).Return(domain.PriceSeries{}, nil)

		handler := NewPriceService(nil, marketDataRepository, nil)

		require.NotEmpty(t, handler.ListPrices(context.Background(), "VWRA.L", start, nil))
		require.Empty(t, handler.ListPrices(context.Background(), "VWRA.L", otherStart, nil))
	})

	t.Run("provider failure without a store degrades to empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
		marketDataRepository.EXPECT().
			ListPrices("BROKEN", start, nil).
			Return(domain.PriceSeries{}, fmt.Errorf("connection reset")).
			Times(1)

		handler := NewPriceService(nil, marketDataRepository, nil)

		require.Empty(t, handler.ListPrices(context.Background(), "BROKEN", start, nil))
		// the degraded result is cached too - no second provider hit
		require.Empty(t, handler.ListPrices(context.Background(), "BROKEN", start, nil))
	})
}

func Test_GetNativeCurrency(t *testing.T) {
	t.Run("caches the lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
		marketDataRepository.EXPECT().
			GetNativeCurrency("VWRA.L").
			Return("GBP").
			Times(1)

		handler := NewPriceService(nil, marketDataRepository, nil)

		require.Equal(t, "GBP", handler.GetNativeCurrency(context.Background(), "VWRA.L"))
		require.Equal(t, "GBP", handler.GetNativeCurrency(context.Background(), "VWRA.L"))
	})
}

func Test_HasHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
	start := util.NewDate(2020, 1, 1)
	marketDataRepository.EXPECT().ListPrices("EMPTY", start, nil).Return(domain.PriceSeries{}, nil)
	marketDataRepository.EXPECT().ListPrices("FULL", start, nil).Return(domain.NewPriceSeries([]domain.PricePoint{
		{Date: util.NewDate(2020, 1, 2), Price: 100},
	}), nil)

	handler := NewPriceService(nil, marketDataRepository, nil)

	require.False(t, handler.HasHistory(context.Background(), "EMPTY", start))
	require.True(t, handler.HasHistory(context.Background(), "FULL", start))
}

func Test_RecommendTickers(t *testing.T) {
	require.Contains(t, RecommendTickers(domain.AssetRole_Equity), "VWRA.L")
	require.Contains(t, RecommendTickers(domain.AssetRole_Bond), "AGGU.L")
	require.Contains(t, RecommendTickers(domain.AssetRole_Crypto), "BTC-USD")
	require.Empty(t, RecommendTickers(domain.AssetRole_Other))
}
