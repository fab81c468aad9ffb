package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"handling/pb"

	"github.com/golang/protobuf/ptypes"
	"google.golang.org/grpc"
)

const address = "localhost:5053"

func main() {
	if len(os.Args) <= 4 {
		fmt.Printf("Usage:\n\thandling_client ID VOYAGE_NUMBER UN_LOCODE EVENT_TYPE\n")
		os.Exit(1)
	}

	conn, err := grpc.Dial(address, grpc.WithInsecure(), grpc.WithBlock())
	checkErr(err)
	defer conn.Close()
	client := pb.NewHandlingServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	eventType, ok := pb.HandlingEventType_value[os.Args[4]]
	if !ok {
		log.Fatalf("unknown event type: %s", os.Args[4])
	}

	_, err = client.RegisterHandlingEvent(ctx, &pb.RegisterHandlingEventRequest{
		Completed:    ptypes.TimestampNow(),
		Id:           os.Args[1],
		VoyageNumber: os.Args[2],
		UnLocode:     os.Args[3],
		EventType:    pb.HandlingEventType(eventType),
	})
	checkErr(err)
	fmt.Println("OK")
}

func checkErr(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
