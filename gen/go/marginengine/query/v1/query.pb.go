// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: marginengine/query/v1/query.proto

package queryv1

import (
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// AccountUpdate is one committed valuation snapshot.
// collateral_ratio and leverage may carry IEEE infinities: an account with
// no liabilities has an infinite ratio and zero leverage.
type AccountUpdate struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	AccountId       string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Version         int64                  `protobuf:"varint,2,opt,name=version,proto3" json:"version,omitempty"`
	AssetsValue     float64                `protobuf:"fixed64,3,opt,name=assets_value,json=assetsValue,proto3" json:"assets_value,omitempty"`
	LiabsValue      float64                `protobuf:"fixed64,4,opt,name=liabs_value,json=liabsValue,proto3" json:"liabs_value,omitempty"`
	Equity          float64                `protobuf:"fixed64,5,opt,name=equity,proto3" json:"equity,omitempty"`
	CollateralRatio float64                `protobuf:"fixed64,6,opt,name=collateral_ratio,json=collateralRatio,proto3" json:"collateral_ratio,omitempty"`
	Leverage        float64                `protobuf:"fixed64,7,opt,name=leverage,proto3" json:"leverage,omitempty"`
	RiskStatus      string                 `protobuf:"bytes,8,opt,name=risk_status,json=riskStatus,proto3" json:"risk_status,omitempty"`
	Pnl             float64                `protobuf:"fixed64,9,opt,name=pnl,proto3" json:"pnl,omitempty"`
	ComputedAt      *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=computed_at,json=computedAt,proto3" json:"computed_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *AccountUpdate) Reset() {
	*x = AccountUpdate{}
	mi := &file_marginengine_query_v1_query_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AccountUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AccountUpdate) ProtoMessage() {}

func (x *AccountUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_marginengine_query_v1_query_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AccountUpdate.ProtoReflect.Descriptor instead.
func (*AccountUpdate) Descriptor() ([]byte, []int) {
	return file_marginengine_query_v1_query_proto_rawDescGZIP(), []int{0}
}

func (x *AccountUpdate) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *AccountUpdate) GetVersion() int64 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *AccountUpdate) GetAssetsValue() float64 {
	if x != nil {
		return x.AssetsValue
	}
	return 0
}

func (x *AccountUpdate) GetLiabsValue() float64 {
	if x != nil {
		return x.LiabsValue
	}
	return 0
}

func (x *AccountUpdate) GetEquity() float64 {
	if x != nil {
		return x.Equity
	}
	return 0
}

func (x *AccountUpdate) GetCollateralRatio() float64 {
	if x != nil {
		return x.CollateralRatio
	}
	return 0
}

func (x *AccountUpdate) GetLeverage() float64 {
	if x != nil {
		return x.Leverage
	}
	return 0
}

func (x *AccountUpdate) GetRiskStatus() string {
	if x != nil {
		return x.RiskStatus
	}
	return ""
}

func (x *AccountUpdate) GetPnl() float64 {
	if x != nil {
		return x.Pnl
	}
	return 0
}

func (x *AccountUpdate) GetComputedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ComputedAt
	}
	return nil
}

type Trade struct {
	state                  protoimpl.MessageState `protogen:"open.v1"`
	Market                 string                 `protobuf:"bytes,1,opt,name=market,proto3" json:"market,omitempty"`
	OrderId                string                 `protobuf:"bytes,2,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Side                   string                 `protobuf:"bytes,3,opt,name=side,proto3" json:"side,omitempty"`
	AccountId              string                 `protobuf:"bytes,4,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Size                   float64                `protobuf:"fixed64,5,opt,name=size,proto3" json:"size,omitempty"`
	Price                  float64                `protobuf:"fixed64,6,opt,name=price,proto3" json:"price,omitempty"`
	Liquidity              string                 `protobuf:"bytes,7,opt,name=liquidity,proto3" json:"liquidity,omitempty"`
	NativeQuantityPaid     int64                  `protobuf:"varint,8,opt,name=native_quantity_paid,json=nativeQuantityPaid,proto3" json:"native_quantity_paid,omitempty"`
	NativeQuantityReleased int64                  `protobuf:"varint,9,opt,name=native_quantity_released,json=nativeQuantityReleased,proto3" json:"native_quantity_released,omitempty"`
	ExecutedAt             *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=executed_at,json=executedAt,proto3" json:"executed_at,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *Trade) Reset() {
	*x = Trade{}
	mi := &file_marginengine_query_v1_query_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Trade) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Trade) ProtoMessage() {}

func (x *Trade) ProtoReflect() protoreflect.Message {
	mi := &file_marginengine_query_v1_query_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Trade.ProtoReflect.Descriptor instead.
func (*Trade) Descriptor() ([]byte, []int) {
	return file_marginengine_query_v1_query_proto_rawDescGZIP(), []int{1}
}

func (x *Trade) GetMarket() string {
	if x != nil {
		return x.Market
	}
	return ""
}

func (x *Trade) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *Trade) GetSide() string {
	if x != nil {
		return x.Side
	}
	return ""
}

func (x *Trade) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *Trade) GetSize() float64 {
	if x != nil {
		return x.Size
	}
	return 0
}

func (x *Trade) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Trade) GetLiquidity() string {
	if x != nil {
		return x.Liquidity
	}
	return ""
}

func (x *Trade) GetNativeQuantityPaid() int64 {
	if x != nil {
		return x.NativeQuantityPaid
	}
	return 0
}

func (x *Trade) GetNativeQuantityReleased() int64 {
	if x != nil {
		return x.NativeQuantityReleased
	}
	return 0
}

func (x *Trade) GetExecutedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ExecutedAt
	}
	return nil
}

type RiskOverviewEntry struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	AccountId       string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	CollateralRatio float64                `protobuf:"fixed64,2,opt,name=collateral_ratio,json=collateralRatio,proto3" json:"collateral_ratio,omitempty"`
	Equity          float64                `protobuf:"fixed64,3,opt,name=equity,proto3" json:"equity,omitempty"`
	RiskStatus      string                 `protobuf:"bytes,4,opt,name=risk_status,json=riskStatus,proto3" json:"risk_status,omitempty"`
	Version         int64                  `protobuf:"varint,5,opt,name=version,proto3" json:"version,omitempty"`
	ComputedAt      *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=computed_at,json=computedAt,proto3" json:"computed_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *RiskOverviewEntry) Reset() {
	*x = RiskOverviewEntry{}
	mi := &file_marginengine_query_v1_query_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RiskOverviewEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RiskOverviewEntry) ProtoMessage() {}

func (x *RiskOverviewEntry) ProtoReflect() protoreflect.Message {
	mi := &file_marginengine_query_v1_query_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RiskOverviewEntry.ProtoReflect.Descriptor instead.
func (*RiskOverviewEntry) Descriptor() ([]byte, []int) {
	return file_marginengine_query_v1_query_proto_rawDescGZIP(), []int{2}
}

func (x *RiskOverviewEntry) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *RiskOverviewEntry) GetCollateralRatio() float64 {
	if x != nil {
		return x.CollateralRatio
	}
	return 0
}

func (x *RiskOverviewEntry) GetEquity() float64 {
	if x != nil {
		return x.Equity
	}
	return 0
}

func (x *RiskOverviewEntry) GetRiskStatus() string {
	if x != nil {
		return x.RiskStatus
	}
	return ""
}

func (x *RiskOverviewEntry) GetVersion() int64 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *RiskOverviewEntry) GetComputedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ComputedAt
	}
	return nil
}

type GetAccountUpdateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAccountUpdateRequest) Reset() {
	*x = GetAccountUpdateRequest{}
	mi := &file_marginengine_query_v1_query_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAccountUpdateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAccountUpdateRequest) ProtoMessage() {}

func (x *GetAccountUpdateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marginengine_query_v1_query_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAccountUpdateRequest.ProtoReflect.Descriptor instead.
func (*GetAccountUpdateRequest) Descriptor() ([]byte, []int) {
	return file_marginengine_query_v1_query_proto_rawDescGZIP(), []int{3}
}

func (x *GetAccountUpdateRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

type GetAccountUpdateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Update        *AccountUpdate         `protobuf:"bytes,1,opt,name=update,proto3" json:"update,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAccountUpdateResponse) Reset() {
	*x = GetAccountUpdateResponse{}
	mi := &file_marginengine_query_v1_query_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAccountUpdateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAccountUpdateResponse) ProtoMessage() {}

func (x *GetAccountUpdateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marginengine_query_v1_query_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAccountUpdateResponse.ProtoReflect.Descriptor instead.
func (*GetAccountUpdateResponse) Descriptor() ([]byte, []int) {
	return file_marginengine_query_v1_query_proto_rawDescGZIP(), []int{4}
}

func (x *GetAccountUpdateResponse) GetUpdate() *AccountUpdate {
	if x != nil {
		return x.Update
	}
	return nil
}

type ListAccountUpdatesRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	AccountId string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	PageSize  int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	// Return updates with version strictly below this cursor; 0 means from
	// the newest.
	BeforeVersion int64 `protobuf:"varint,3,opt,name=before_version,json=beforeVersion,proto3" json:"before_version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAccountUpdatesRequest) Reset() {
	*x = ListAccountUpdatesRequest{}
	mi := &file_marginengine_query_v1_query_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAccountUpdatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAccountUpdatesRequest) ProtoMessage() {}

func (x *ListAccountUpdatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marginengine_query_v1_query_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAccountUpdatesRequest.ProtoReflect.Descriptor instead.
func (*ListAccountUpdatesRequest) Descriptor() ([]byte, []int) {
	return file_marginengine_query_v1_query_proto_rawDescGZIP(), []int{5}
}

func (x *ListAccountUpdatesRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ListAccountUpdatesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListAccountUpdatesRequest) GetBeforeVersion() int64 {
	if x != nil {
		return x.BeforeVersion
	}
	return 0
}

type ListAccountUpdatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Updates       []*AccountUpdate       `protobuf:"bytes,1,rep,name=updates,proto3" json:"updates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAccountUpdatesResponse) Reset() {
	*x = ListAccountUpdatesResponse{}
	mi := &file_marginengine_query_v1_query_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAccountUpdatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAccountUpdatesResponse) ProtoMessage() {}

func (x *ListAccountUpdatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marginengine_query_v1_query_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAccountUpdatesResponse.ProtoReflect.Descriptor instead.
func (*ListAccountUpdatesResponse) Descriptor() ([]byte, []int) {
	return file_marginengine_query_v1_query_proto_rawDescGZIP(), []int{6}
}

func (x *ListAccountUpdatesResponse) GetUpdates() []*AccountUpdate {
	if x != nil {
		return x.Updates
	}
	return nil
}

type ListTradesRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	AccountId string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Market    string                 `protobuf:"bytes,2,opt,name=market,proto3" json:"market,omitempty"`
	PageSize  int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	// Return trades executed strictly before this cursor (microseconds since
	// epoch); 0 means from the newest.
	BeforeUs      int64 `protobuf:"varint,4,opt,name=before_us,json=beforeUs,proto3" json:"before_us,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTradesRequest) Reset() {
	*x = ListTradesRequest{}
	mi := &file_marginengine_query_v1_query_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTradesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTradesRequest) ProtoMessage() {}

func (x *ListTradesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marginengine_query_v1_query_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTradesRequest.ProtoReflect.Descriptor instead.
func (*ListTradesRequest) Descriptor() ([]byte, []int) {
	return file_marginengine_query_v1_query_proto_rawDescGZIP(), []int{7}
}

func (x *ListTradesRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ListTradesRequest) GetMarket() string {
	if x != nil {
		return x.Market
	}
	return ""
}

func (x *ListTradesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListTradesRequest) GetBeforeUs() int64 {
	if x != nil {
		return x.BeforeUs
	}
	return 0
}

type ListTradesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Trades        []*Trade               `protobuf:"bytes,1,rep,name=trades,proto3" json:"trades,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTradesResponse) Reset() {
	*x = ListTradesResponse{}
	mi := &file_marginengine_query_v1_query_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTradesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTradesResponse) ProtoMessage() {}

func (x *ListTradesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marginengine_query_v1_query_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTradesResponse.ProtoReflect.Descriptor instead.
func (*ListTradesResponse) Descriptor() ([]byte, []int) {
	return file_marginengine_query_v1_query_proto_rawDescGZIP(), []int{8}
}

func (x *ListTradesResponse) GetTrades() []*Trade {
	if x != nil {
		return x.Trades
	}
	return nil
}

type ListAccountsByStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAccountsByStatusRequest) Reset() {
	*x = ListAccountsByStatusRequest{}
	mi := &file_marginengine_query_v1_query_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAccountsByStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAccountsByStatusRequest) ProtoMessage() {}

func (x *ListAccountsByStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marginengine_query_v1_query_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAccountsByStatusRequest.ProtoReflect.Descriptor instead.
func (*ListAccountsByStatusRequest) Descriptor() ([]byte, []int) {
	return file_marginengine_query_v1_query_proto_rawDescGZIP(), []int{9}
}

func (x *ListAccountsByStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListAccountsByStatusRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListAccountsByStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*RiskOverviewEntry   `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAccountsByStatusResponse) Reset() {
	*x = ListAccountsByStatusResponse{}
	mi := &file_marginengine_query_v1_query_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAccountsByStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAccountsByStatusResponse) ProtoMessage() {}

func (x *ListAccountsByStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marginengine_query_v1_query_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAccountsByStatusResponse.ProtoReflect.Descriptor instead.
func (*ListAccountsByStatusResponse) Descriptor() ([]byte, []int) {
	return file_marginengine_query_v1_query_proto_rawDescGZIP(), []int{10}
}

func (x *ListAccountsByStatusResponse) GetEntries() []*RiskOverviewEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

var File_marginengine_query_v1_query_proto protoreflect.FileDescriptor

const file_marginengine_query_v1_query_proto_rawDesc = "" +
	"\n" +
	"!marginengine/query/v1/query.proto\x12\x15marginengine.query.v1\x1a\x1cgoogle/api/annotations.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\xdb\x02\n" +
	"\rAccountUpdate\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x18\n" +
	"\aversion\x18\x02 \x01(\x03R\aversion\x12!\n" +
	"\fassets_value\x18\x03 \x01(\x01R\vassetsValue\x12\x1f\n" +
	"\vliabs_value\x18\x04 \x01(\x01R\n" +
	"liabsValue\x12\x16\n" +
	"\x06equity\x18\x05 \x01(\x01R\x06equity\x12)\n" +
	"\x10collateral_ratio\x18\x06 \x01(\x01R\x0fcollateralRatio\x12\x1a\n" +
	"\bleverage\x18\a \x01(\x01R\bleverage\x12\x1f\n" +
	"\vrisk_status\x18\b \x01(\tR\n" +
	"riskStatus\x12\x10\n" +
	"\x03pnl\x18\t \x01(\x01R\x03pnl\x12;\n" +
	"\vcomputed_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"computedAt\"\xde\x02\n" +
	"\x05Trade\x12\x16\n" +
	"\x06market\x18\x01 \x01(\tR\x06market\x12\x19\n" +
	"\border_id\x18\x02 \x01(\tR\aorderId\x12\x12\n" +
	"\x04side\x18\x03 \x01(\tR\x04side\x12\x1d\n" +
	"\n" +
	"account_id\x18\x04 \x01(\tR\taccountId\x12\x12\n" +
	"\x04size\x18\x05 \x01(\x01R\x04size\x12\x14\n" +
	"\x05price\x18\x06 \x01(\x01R\x05price\x12\x1c\n" +
	"\tliquidity\x18\a \x01(\tR\tliquidity\x120\n" +
	"\x14native_quantity_paid\x18\b \x01(\x03R\x12nativeQuantityPaid\x128\n" +
	"\x18native_quantity_released\x18\t \x01(\x03R\x16nativeQuantityReleased\x12;\n" +
	"\vexecuted_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"executedAt\"\xed\x01\n" +
	"\x11RiskOverviewEntry\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12)\n" +
	"\x10collateral_ratio\x18\x02 \x01(\x01R\x0fcollateralRatio\x12\x16\n" +
	"\x06equity\x18\x03 \x01(\x01R\x06equity\x12\x1f\n" +
	"\vrisk_status\x18\x04 \x01(\tR\n" +
	"riskStatus\x12\x18\n" +
	"\aversion\x18\x05 \x01(\x03R\aversion\x12;\n" +
	"\vcomputed_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"computedAt\"8\n" +
	"\x17GetAccountUpdateRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\"X\n" +
	"\x18GetAccountUpdateResponse\x12<\n" +
	"\x06update\x18\x01 \x01(\v2$.marginengine.query.v1.AccountUpdateR\x06update\"~\n" +
	"\x19ListAccountUpdatesRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12%\n" +
	"\x0ebefore_version\x18\x03 \x01(\x03R\rbeforeVersion\"\\\n" +
	"\x1aListAccountUpdatesResponse\x12>\n" +
	"\aupdates\x18\x01 \x03(\v2$.marginengine.query.v1.AccountUpdateR\aupdates\"\x84\x01\n" +
	"\x11ListTradesRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x16\n" +
	"\x06market\x18\x02 \x01(\tR\x06market\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\x12\x1b\n" +
	"\tbefore_us\x18\x04 \x01(\x03R\bbeforeUs\"J\n" +
	"\x12ListTradesResponse\x124\n" +
	"\x06trades\x18\x01 \x03(\v2\x1c.marginengine.query.v1.TradeR\x06trades\"R\n" +
	"\x1bListAccountsByStatusRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\"b\n" +
	"\x1cListAccountsByStatusResponse\x12B\n" +
	"\aentries\x18\x01 \x03(\v2(.marginengine.query.v1.RiskOverviewEntryR\aentries2\x80\x05\n" +
	"\fQueryService\x12\x9d\x01\n" +
	"\x10GetAccountUpdate\x12..marginengine.query.v1.GetAccountUpdateRequest\x1a/.marginengine.query.v1.GetAccountUpdateResponse\"(\x82\xd3\xe4\x93\x02\"\x12 /v1/accounts/{account_id}/latest\x12\xa4\x01\n" +
	"\x12ListAccountUpdates\x120.marginengine.query.v1.ListAccountUpdatesRequest\x1a1.marginengine.query.v1.ListAccountUpdatesResponse\")\x82\xd3\xe4\x93\x02#\x12!/v1/accounts/{account_id}/updates\x12\x8b\x01\n" +
	"\n" +
	"ListTrades\x12(.marginengine.query.v1.ListTradesRequest\x1a).marginengine.query.v1.ListTradesResponse\"(\x82\xd3\xe4\x93\x02\"\x12 /v1/accounts/{account_id}/trades\x12\x9a\x01\n" +
	"\x14ListAccountsByStatus\x122.marginengine.query.v1.ListAccountsByStatusRequest\x1a3.marginengine.query.v1.ListAccountsByStatusResponse\"\x19\x82\xd3\xe4\x93\x02\x13\x12\x11/v1/risk/{status}B3Z1MarginEngine/gen/go/marginengine/query/v1;queryv1b\x06proto3"

var (
	file_marginengine_query_v1_query_proto_rawDescOnce sync.Once
	file_marginengine_query_v1_query_proto_rawDescData []byte
)

func file_marginengine_query_v1_query_proto_rawDescGZIP() []byte {
	file_marginengine_query_v1_query_proto_rawDescOnce.Do(func() {
		file_marginengine_query_v1_query_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_marginengine_query_v1_query_proto_rawDesc), len(file_marginengine_query_v1_query_proto_rawDesc)))
	})
	return file_marginengine_query_v1_query_proto_rawDescData
}

var file_marginengine_query_v1_query_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_marginengine_query_v1_query_proto_goTypes = []any{
	(*AccountUpdate)(nil),                // 0: marginengine.query.v1.AccountUpdate
	(*Trade)(nil),                        // 1: marginengine.query.v1.Trade
	(*RiskOverviewEntry)(nil),            // 2: marginengine.query.v1.RiskOverviewEntry
	(*GetAccountUpdateRequest)(nil),      // 3: marginengine.query.v1.GetAccountUpdateRequest
	(*GetAccountUpdateResponse)(nil),     // 4: marginengine.query.v1.GetAccountUpdateResponse
	(*ListAccountUpdatesRequest)(nil),    // 5: marginengine.query.v1.ListAccountUpdatesRequest
	(*ListAccountUpdatesResponse)(nil),   // 6: marginengine.query.v1.ListAccountUpdatesResponse
	(*ListTradesRequest)(nil),            // 7: marginengine.query.v1.ListTradesRequest
	(*ListTradesResponse)(nil),           // 8: marginengine.query.v1.ListTradesResponse
	(*ListAccountsByStatusRequest)(nil),  // 9: marginengine.query.v1.ListAccountsByStatusRequest
	(*ListAccountsByStatusResponse)(nil), // 10: marginengine.query.v1.ListAccountsByStatusResponse
	(*timestamppb.Timestamp)(nil),        // 11: google.protobuf.Timestamp
}
var file_marginengine_query_v1_query_proto_depIdxs = []int32{
	11, // 0: marginengine.query.v1.AccountUpdate.computed_at:type_name -> google.protobuf.Timestamp
	11, // 1: marginengine.query.v1.Trade.executed_at:type_name -> google.protobuf.Timestamp
	11, // 2: marginengine.query.v1.RiskOverviewEntry.computed_at:type_name -> google.protobuf.Timestamp
	0,  // 3: marginengine.query.v1.GetAccountUpdateResponse.update:type_name -> marginengine.query.v1.AccountUpdate
	0,  // 4: marginengine.query.v1.ListAccountUpdatesResponse.updates:type_name -> marginengine.query.v1.AccountUpdate
	1,  // 5: marginengine.query.v1.ListTradesResponse.trades:type_name -> marginengine.query.v1.Trade
	2,  // 6: marginengine.query.v1.ListAccountsByStatusResponse.entries:type_name -> marginengine.query.v1.RiskOverviewEntry
	3,  // 7: marginengine.query.v1.QueryService.GetAccountUpdate:input_type -> marginengine.query.v1.GetAccountUpdateRequest
	5,  // 8: marginengine.query.v1.QueryService.ListAccountUpdates:input_type -> marginengine.query.v1.ListAccountUpdatesRequest
	7,  // 9: marginengine.query.v1.QueryService.ListTrades:input_type -> marginengine.query.v1.ListTradesRequest
	9,  // 10: marginengine.query.v1.QueryService.ListAccountsByStatus:input_type -> marginengine.query.v1.ListAccountsByStatusRequest
	4,  // 11: marginengine.query.v1.QueryService.GetAccountUpdate:output_type -> marginengine.query.v1.GetAccountUpdateResponse
	6,  // 12: marginengine.query.v1.QueryService.ListAccountUpdates:output_type -> marginengine.query.v1.ListAccountUpdatesResponse
	8,  // 13: marginengine.query.v1.QueryService.ListTrades:output_type -> marginengine.query.v1.ListTradesResponse
	10, // 14: marginengine.query.v1.QueryService.ListAccountsByStatus:output_type -> marginengine.query.v1.ListAccountsByStatusResponse
	11, // [11:15] is the sub-list for method output_type
	7,  // [7:11] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_marginengine_query_v1_query_proto_init() }
func file_marginengine_query_v1_query_proto_init() {
	if File_marginengine_query_v1_query_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_marginengine_query_v1_query_proto_rawDesc), len(file_marginengine_query_v1_query_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_marginengine_query_v1_query_proto_goTypes,
		DependencyIndexes: file_marginengine_query_v1_query_proto_depIdxs,
		MessageInfos:      file_marginengine_query_v1_query_proto_msgTypes,
	}.Build()
	File_marginengine_query_v1_query_proto = out.File
	file_marginengine_query_v1_query_proto_goTypes = nil
	file_marginengine_query_v1_query_proto_depIdxs = nil
}
