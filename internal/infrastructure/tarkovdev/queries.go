package tarkovdev

// GraphQL documents for the tarkov.dev API. The API exposes the PvE
// economy through a gameMode argument on the items root field; queryFor
// rewrites the documents instead of duplicating them.

const itemsQuery = `
  query GetItemsWithCraftsAndBarters($ids: [ID!]!) {
    items(ids: $ids) {
      id
      name
      shortName
      avg24hPrice
      lastLowPrice
      changeLast48h
      changeLast48hPercent
      updated
      iconLink
      wikiLink
      fleaMarketFee
      sellFor {
        price
        currency
        priceRUB
        vendor {
          name
          normalizedName
        }
      }
      craftsFor {
        id
        station {
          id
          name
          normalizedName
        }
        level
        duration
        requiredItems {
          item {
            id
            name
            shortName
            iconLink
          }
          count
        }
        rewardItems {
          item {
            id
            name
            shortName
          }
          count
        }
      }
      bartersFor {
        id
        trader {
          id
          name
          normalizedName
        }
        level
        requiredItems {
          item {
            id
            name
            shortName
            iconLink
          }
          count
        }
        rewardItems {
          item {
            id
            name
            shortName
          }
          count
        }
        taskUnlock {
          id
          name
        }
      }
    }
  }
`

const bundledItemsQuery = `
  query GetBundledItems($names: [String!]!) {
    items(names: $names) {
      id
      name
      shortName
      avg24hPrice
      lastLowPrice
      sellFor {
        price
        currency
        priceRUB
        vendor {
          name
          normalizedName
        }
      }
      bartersFor {
        id
        trader {
          id
          name
          normalizedName
        }
        level
        requiredItems {
          item {
            id
            name
            shortName
            iconLink
          }
          count
        }
        rewardItems {
          item {
            id
            name
            shortName
          }
          count
        }
        taskUnlock {
          id
          name
        }
      }
      containsItems {
        item {
          id
          name
          shortName
          iconLink
          avg24hPrice
          lastLowPrice
          changeLast48h
          sellFor {
            price
            currency
            priceRUB
            vendor {
              name
              normalizedName
            }
          }
        }
        count
      }
    }
  }
`

const pricesQuery = `
  query GetItemPrices($ids: [ID!]!) {
    items(ids: $ids) {
      id
      avg24hPrice
      lastLowPrice
    }
  }
`

const tasksQuery = `
  query GetQuestData {
    tasks {
      id
      name
      trader {
        id
        name
        normalizedName
      }
      objectives {
        id
        description
        type
        ... on TaskObjectiveItem {
          item {
            id
            name
            shortName
          }
          count
          foundInRaid
        }
      }
    }
  }
`
